package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type ProductRepository interface {
	List(ctx context.Context, category *domain.ProductCategory) ([]domain.Product, error)
	Get(ctx context.Context, id uint64) (domain.Product, error)
	Create(ctx context.Context, input domain.CreateProductInput) (domain.Product, error)
	Update(ctx context.Context, id uint64, input domain.UpdateProductInput) (domain.Product, error)
	Delete(ctx context.Context, id uint64) error
}

type ProductService interface {
	ListProducts(ctx context.Context, category *domain.ProductCategory) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uint64) (domain.Product, error)
	CreateProduct(ctx context.Context, input domain.CreateProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id uint64, input domain.UpdateProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}
