package domain

import "time"

type ProductCategory string

const (
	ProductCategoryElectronics ProductCategory = "electronics"
	ProductCategoryVehicles    ProductCategory = "vehicles"
	ProductCategoryJewellery   ProductCategory = "jewellery"
	ProductCategoryGadgets     ProductCategory = "gadgets"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case ProductCategoryElectronics, ProductCategoryVehicles, ProductCategoryJewellery, ProductCategoryGadgets:
		return true
	}
	return false
}

type ElectronicsDetails struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number,omitempty"`
}

type VehicleDetails struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Registration string `json:"registration,omitempty"`
}

type JewelleryDetails struct {
	Metal       string  `json:"metal"`
	WeightGrams float64 `json:"weight_grams,omitempty"`
	Purity      string  `json:"purity,omitempty"`
}

type GadgetDetails struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// ProductDetails is the category-specific sub-record; at most the field
// matching the product's category is set.
type ProductDetails struct {
	Electronics *ElectronicsDetails `json:"electronics,omitempty"`
	Vehicle     *VehicleDetails     `json:"vehicle,omitempty"`
	Jewellery   *JewelleryDetails   `json:"jewellery,omitempty"`
	Gadget      *GadgetDetails      `json:"gadget,omitempty"`
}

// Product is a registry entry whose warranty status is always derived from
// WarrantyExpiryDate at read time, never stored.
type Product struct {
	ID                 uint64
	Name               string
	Category           ProductCategory
	PurchaseDate       *time.Time
	WarrantyExpiryDate *time.Time
	Price              *float64
	Notes              *string
	Details            ProductDetails
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CreateProductInput struct {
	Name               string
	Category           ProductCategory
	PurchaseDate       *time.Time
	WarrantyExpiryDate *time.Time
	Price              *float64
	Notes              *string
	Details            ProductDetails
}

type UpdateProductInput struct {
	Name                  *string
	Category              *ProductCategory
	PurchaseDate          *time.Time
	PurchaseDateSet       bool
	WarrantyExpiryDate    *time.Time
	WarrantyExpiryDateSet bool
	Price                 *float64
	PriceSet              bool
	Notes                 *string
	NotesSet              bool
	Details               *ProductDetails
}
