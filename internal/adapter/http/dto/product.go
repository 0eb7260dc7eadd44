package dto

type ElectronicsDetailsPayload struct {
	Brand        string `json:"brand" binding:"required,max=255"`
	Model        string `json:"model" binding:"required,max=255"`
	SerialNumber string `json:"serial_number" binding:"omitempty,max=255"`
}

type VehicleDetailsPayload struct {
	Make         string `json:"make" binding:"required,max=255"`
	Model        string `json:"model" binding:"required,max=255"`
	Registration string `json:"registration" binding:"omitempty,max=64"`
}

type JewelleryDetailsPayload struct {
	Metal       string  `json:"metal" binding:"required,max=64"`
	WeightGrams float64 `json:"weight_grams" binding:"omitempty,gt=0"`
	Purity      string  `json:"purity" binding:"omitempty,max=64"`
}

type GadgetDetailsPayload struct {
	Brand string `json:"brand" binding:"required,max=255"`
	Model string `json:"model" binding:"required,max=255"`
}

type ProductDetailsPayload struct {
	Electronics *ElectronicsDetailsPayload `json:"electronics" binding:"omitempty"`
	Vehicle     *VehicleDetailsPayload     `json:"vehicle" binding:"omitempty"`
	Jewellery   *JewelleryDetailsPayload   `json:"jewellery" binding:"omitempty"`
	Gadget      *GadgetDetailsPayload      `json:"gadget" binding:"omitempty"`
}

type ProductItem struct {
	ID                 uint64                 `json:"id"`
	Name               string                 `json:"name"`
	Category           string                 `json:"category"`
	PurchaseDate       *string                `json:"purchase_date,omitempty"`
	WarrantyExpiryDate *string                `json:"warranty_expiry_date,omitempty"`
	Price              *float64               `json:"price,omitempty"`
	Notes              *string                `json:"notes,omitempty"`
	Details            *ProductDetailsPayload `json:"details,omitempty"`
	WarrantyStatus     string                 `json:"warranty_status"`
	DaysToExpiry       *int                   `json:"days_to_expiry,omitempty"`
	WarrantyExpiring   bool                   `json:"warranty_expiring_soon"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
}

type CreateProductRequest struct {
	Name               string                 `json:"name" binding:"required,max=255"`
	Category           string                 `json:"category" binding:"required,oneof=electronics vehicles jewellery gadgets"`
	PurchaseDate       *string                `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	WarrantyExpiryDate *string                `json:"warranty_expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Price              *float64               `json:"price" binding:"omitempty,gte=0"`
	Notes              *string                `json:"notes" binding:"omitempty,max=1024"`
	Details            *ProductDetailsPayload `json:"details" binding:"omitempty"`
}

type UpdateProductRequest struct {
	Name               *string                `json:"name" binding:"omitempty,max=255"`
	Category           *string                `json:"category" binding:"omitempty,oneof=electronics vehicles jewellery gadgets"`
	PurchaseDate       *string                `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	WarrantyExpiryDate *string                `json:"warranty_expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Price              *float64               `json:"price" binding:"omitempty,gte=0"`
	Notes              *string                `json:"notes" binding:"omitempty,max=1024"`
	Details            *ProductDetailsPayload `json:"details" binding:"omitempty"`
}
