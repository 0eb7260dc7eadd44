package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

// Subscription items carry the renewal status derived at read time, so the
// mappers take the current clock reading.

func ToSubscriptionItems(subscriptions []domain.Subscription, now time.Time) []dto.SubscriptionItem {
	items := make([]dto.SubscriptionItem, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		items = append(items, ToSubscriptionItem(subscription, now))
	}
	return items
}

func ToSubscriptionItem(subscription domain.Subscription, now time.Time) dto.SubscriptionItem {
	item := dto.SubscriptionItem{
		ID:            subscription.ID,
		Name:          subscription.Name,
		Frequency:     string(subscription.Frequency),
		Amount:        subscription.Amount,
		IsActive:      subscription.IsActive,
		RenewalStatus: string(subscription.RenewalStatus(now)),
		CreatedAt:     subscription.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     subscription.UpdatedAt.Format(time.RFC3339),
	}

	if subscription.Category != nil {
		value := *subscription.Category
		item.Category = &value
	}
	if subscription.StartDate != nil {
		value := subscription.StartDate.Format("2006-01-02")
		item.StartDate = &value
	}
	if subscription.NextRenewalDate != nil {
		value := subscription.NextRenewalDate.Format("2006-01-02")
		item.NextRenewalDate = &value
	}
	if days, ok := subscription.DaysUntilRenewal(now); ok {
		item.DaysToRenewal = &days
	}

	return item
}
