package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

// Product items carry warranty fields derived at read time, so the mappers
// take the current clock reading.

func ToProductItems(products []domain.Product, now time.Time) []dto.ProductItem {
	items := make([]dto.ProductItem, 0, len(products))
	for _, product := range products {
		items = append(items, ToProductItem(product, now))
	}
	return items
}

func ToProductItem(product domain.Product, now time.Time) dto.ProductItem {
	item := dto.ProductItem{
		ID:               product.ID,
		Name:             product.Name,
		Category:         string(product.Category),
		WarrantyStatus:   string(product.WarrantyStatus(now)),
		WarrantyExpiring: product.WarrantyExpiringSoon(now),
		CreatedAt:        product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        product.UpdatedAt.Format(time.RFC3339),
	}

	if product.PurchaseDate != nil {
		value := product.PurchaseDate.Format("2006-01-02")
		item.PurchaseDate = &value
	}
	if product.WarrantyExpiryDate != nil {
		value := product.WarrantyExpiryDate.Format("2006-01-02")
		item.WarrantyExpiryDate = &value
	}
	if product.Price != nil {
		value := *product.Price
		item.Price = &value
	}
	if product.Notes != nil {
		value := *product.Notes
		item.Notes = &value
	}
	if details := toProductDetailsPayload(product.Details); details != nil {
		item.Details = details
	}
	if days, ok := product.DaysUntilExpiry(now); ok {
		item.DaysToExpiry = &days
	}

	return item
}

func toProductDetailsPayload(details domain.ProductDetails) *dto.ProductDetailsPayload {
	payload := dto.ProductDetailsPayload{}
	empty := true

	if details.Electronics != nil {
		payload.Electronics = &dto.ElectronicsDetailsPayload{
			Brand:        details.Electronics.Brand,
			Model:        details.Electronics.Model,
			SerialNumber: details.Electronics.SerialNumber,
		}
		empty = false
	}
	if details.Vehicle != nil {
		payload.Vehicle = &dto.VehicleDetailsPayload{
			Make:         details.Vehicle.Make,
			Model:        details.Vehicle.Model,
			Registration: details.Vehicle.Registration,
		}
		empty = false
	}
	if details.Jewellery != nil {
		payload.Jewellery = &dto.JewelleryDetailsPayload{
			Metal:       details.Jewellery.Metal,
			WeightGrams: details.Jewellery.WeightGrams,
			Purity:      details.Jewellery.Purity,
		}
		empty = false
	}
	if details.Gadget != nil {
		payload.Gadget = &dto.GadgetDetailsPayload{
			Brand: details.Gadget.Brand,
			Model: details.Gadget.Model,
		}
		empty = false
	}

	if empty {
		return nil
	}
	return &payload
}

func FromProductDetailsPayload(payload *dto.ProductDetailsPayload) domain.ProductDetails {
	details := domain.ProductDetails{}
	if payload == nil {
		return details
	}

	if payload.Electronics != nil {
		details.Electronics = &domain.ElectronicsDetails{
			Brand:        payload.Electronics.Brand,
			Model:        payload.Electronics.Model,
			SerialNumber: payload.Electronics.SerialNumber,
		}
	}
	if payload.Vehicle != nil {
		details.Vehicle = &domain.VehicleDetails{
			Make:         payload.Vehicle.Make,
			Model:        payload.Vehicle.Model,
			Registration: payload.Vehicle.Registration,
		}
	}
	if payload.Jewellery != nil {
		details.Jewellery = &domain.JewelleryDetails{
			Metal:       payload.Jewellery.Metal,
			WeightGrams: payload.Jewellery.WeightGrams,
			Purity:      payload.Jewellery.Purity,
		}
	}
	if payload.Gadget != nil {
		details.Gadget = &domain.GadgetDetails{
			Brand: payload.Gadget.Brand,
			Model: payload.Gadget.Model,
		}
	}

	return details
}
