package domain

import "time"

type SubscriptionFrequency string

const (
	FrequencyWeekly    SubscriptionFrequency = "weekly"
	FrequencyMonthly   SubscriptionFrequency = "monthly"
	FrequencyQuarterly SubscriptionFrequency = "quarterly"
	FrequencyYearly    SubscriptionFrequency = "yearly"
)

func (f SubscriptionFrequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// Subscription is a registry entry whose renewal status is always derived
// from IsActive and NextRenewalDate at read time, never stored.
type Subscription struct {
	ID              uint64
	Name            string
	Category        *string
	Frequency       SubscriptionFrequency
	Amount          float64
	StartDate       *time.Time
	NextRenewalDate *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CreateSubscriptionInput struct {
	Name            string
	Category        *string
	Frequency       SubscriptionFrequency
	Amount          float64
	StartDate       *time.Time
	NextRenewalDate *time.Time
	IsActive        bool
}

type UpdateSubscriptionInput struct {
	Name               *string
	Category           *string
	CategorySet        bool
	Frequency          *SubscriptionFrequency
	Amount             *float64
	StartDate          *time.Time
	StartDateSet       bool
	NextRenewalDate    *time.Time
	NextRenewalDateSet bool
	IsActive           *bool
}
