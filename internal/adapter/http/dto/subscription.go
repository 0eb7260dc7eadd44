package dto

type SubscriptionItem struct {
	ID              uint64   `json:"id"`
	Name            string   `json:"name"`
	Category        *string  `json:"category,omitempty"`
	Frequency       string   `json:"frequency"`
	Amount          float64  `json:"amount"`
	StartDate       *string  `json:"start_date,omitempty"`
	NextRenewalDate *string  `json:"next_renewal_date,omitempty"`
	IsActive        bool     `json:"is_active"`
	RenewalStatus   string   `json:"renewal_status"`
	DaysToRenewal   *int     `json:"days_to_renewal,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type CreateSubscriptionRequest struct {
	Name            string   `json:"name" binding:"required,max=255"`
	Category        *string  `json:"category" binding:"omitempty,max=64"`
	Frequency       string   `json:"frequency" binding:"required,oneof=weekly monthly quarterly yearly"`
	Amount          float64  `json:"amount" binding:"gte=0"`
	StartDate       *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	NextRenewalDate *string  `json:"next_renewal_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive        *bool    `json:"is_active"`
}

type UpdateSubscriptionRequest struct {
	Name            *string  `json:"name" binding:"omitempty,max=255"`
	Category        *string  `json:"category" binding:"omitempty,max=64"`
	Frequency       *string  `json:"frequency" binding:"omitempty,oneof=weekly monthly quarterly yearly"`
	Amount          *float64 `json:"amount" binding:"omitempty,gte=0"`
	StartDate       *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	NextRenewalDate *string  `json:"next_renewal_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive        *bool    `json:"is_active"`
}
