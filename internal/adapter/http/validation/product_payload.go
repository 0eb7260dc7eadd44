package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/adapter/http/mapper"
	"workdeck/internal/core/domain"
)

var ErrInvalidProductPayload = errors.New("invalid product payload")

func BuildCreateProductInput(req dto.CreateProductRequest) (domain.CreateProductInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProductInput{}, ErrInvalidProductPayload
	}

	purchaseDate, err := parseOptionalDate(req.PurchaseDate)
	if err != nil {
		return domain.CreateProductInput{}, ErrInvalidProductPayload
	}
	warrantyExpiry, err := parseOptionalDate(req.WarrantyExpiryDate)
	if err != nil {
		return domain.CreateProductInput{}, ErrInvalidProductPayload
	}

	return domain.CreateProductInput{
		Name:               name,
		Category:           domain.ProductCategory(req.Category),
		PurchaseDate:       purchaseDate,
		WarrantyExpiryDate: warrantyExpiry,
		Price:              req.Price,
		Notes:              req.Notes,
		Details:            mapper.FromProductDetailsPayload(req.Details),
	}, nil
}

func BuildUpdateProductInput(req dto.UpdateProductRequest, raw map[string]json.RawMessage) (domain.UpdateProductInput, error) {
	if !hasProductUpdateFields(raw) {
		return domain.UpdateProductInput{}, ErrInvalidProductPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateProductInput{}, ErrInvalidProductPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProductInput{}, ErrInvalidProductPayload
		}
		name = &value
	}

	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.UpdateProductInput{}, ErrInvalidProductPayload
	}
	var category *domain.ProductCategory
	if req.Category != nil {
		value := domain.ProductCategory(*req.Category)
		category = &value
	}

	var purchaseDate *time.Time
	purchaseDateSet := hasJSONField(raw, "purchase_date")
	if purchaseDateSet && !isJSONNull(raw["purchase_date"]) {
		if req.PurchaseDate == nil {
			return domain.UpdateProductInput{}, ErrInvalidProductPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.PurchaseDate)
		if err != nil {
			return domain.UpdateProductInput{}, ErrInvalidProductPayload
		}
		purchaseDate = &parsed
	}

	var warrantyExpiry *time.Time
	warrantyExpirySet := hasJSONField(raw, "warranty_expiry_date")
	if warrantyExpirySet && !isJSONNull(raw["warranty_expiry_date"]) {
		if req.WarrantyExpiryDate == nil {
			return domain.UpdateProductInput{}, ErrInvalidProductPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.WarrantyExpiryDate)
		if err != nil {
			return domain.UpdateProductInput{}, ErrInvalidProductPayload
		}
		warrantyExpiry = &parsed
	}

	var details *domain.ProductDetails
	if hasJSONField(raw, "details") && !isJSONNull(raw["details"]) {
		mapped := mapper.FromProductDetailsPayload(req.Details)
		details = &mapped
	}

	return domain.UpdateProductInput{
		Name:                  name,
		Category:              category,
		PurchaseDate:          purchaseDate,
		PurchaseDateSet:       purchaseDateSet,
		WarrantyExpiryDate:    warrantyExpiry,
		WarrantyExpiryDateSet: warrantyExpirySet,
		Price:                 req.Price,
		PriceSet:              hasJSONField(raw, "price"),
		Notes:                 req.Notes,
		NotesSet:              hasJSONField(raw, "notes"),
		Details:               details,
	}, nil
}

func hasProductUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "category") ||
		hasJSONField(raw, "purchase_date") ||
		hasJSONField(raw, "warranty_expiry_date") ||
		hasJSONField(raw, "price") ||
		hasJSONField(raw, "notes") ||
		hasJSONField(raw, "details")
}
