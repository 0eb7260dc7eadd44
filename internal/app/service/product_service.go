package service

import (
	"context"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type ProductService struct {
	products ports.ProductRepository
}

func NewProductService(products ports.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

var _ ports.ProductService = (*ProductService)(nil)

func (s *ProductService) ListProducts(ctx context.Context, category *domain.ProductCategory) ([]domain.Product, error) {
	if category != nil && !category.Valid() {
		return nil, domain.NewValidationError("category", "unknown category")
	}
	return s.products.List(ctx, category)
}

func (s *ProductService) GetProduct(ctx context.Context, id uint64) (domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, input domain.CreateProductInput) (domain.Product, error) {
	if !input.Category.Valid() {
		return domain.Product{}, domain.NewValidationError("category", "unknown category")
	}
	if err := validateDetails(input.Category, input.Details); err != nil {
		return domain.Product{}, err
	}
	if input.Price != nil && *input.Price < 0 {
		return domain.Product{}, domain.NewValidationError("price", "must not be negative")
	}
	return s.products.Create(ctx, input)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint64, input domain.UpdateProductInput) (domain.Product, error) {
	current, err := s.products.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	category := current.Category
	if input.Category != nil {
		if !input.Category.Valid() {
			return domain.Product{}, domain.NewValidationError("category", "unknown category")
		}
		category = *input.Category
	}
	details := current.Details
	if input.Details != nil {
		details = *input.Details
	}
	if err := validateDetails(category, details); err != nil {
		return domain.Product{}, err
	}
	if input.PriceSet && input.Price != nil && *input.Price < 0 {
		return domain.Product{}, domain.NewValidationError("price", "must not be negative")
	}
	return s.products.Update(ctx, id, input)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint64) error {
	if _, err := s.products.Get(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

// validateDetails rejects a details sub-record that belongs to a different
// category than the product's. An empty sub-record is always fine.
func validateDetails(category domain.ProductCategory, details domain.ProductDetails) error {
	mismatch := func(have bool, want domain.ProductCategory) bool {
		return have && category != want
	}
	switch {
	case mismatch(details.Electronics != nil, domain.ProductCategoryElectronics),
		mismatch(details.Vehicle != nil, domain.ProductCategoryVehicles),
		mismatch(details.Jewellery != nil, domain.ProductCategoryJewellery),
		mismatch(details.Gadget != nil, domain.ProductCategoryGadgets):
		return domain.NewValidationError("details", "details do not match category")
	}
	return nil
}
