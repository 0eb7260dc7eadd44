package service

import (
	"context"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type SubscriptionService struct {
	subscriptions ports.SubscriptionRepository
}

func NewSubscriptionService(subscriptions ports.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions}
}

var _ ports.SubscriptionService = (*SubscriptionService)(nil)

func (s *SubscriptionService) ListSubscriptions(ctx context.Context, activeOnly bool) ([]domain.Subscription, error) {
	return s.subscriptions.List(ctx, activeOnly)
}

func (s *SubscriptionService) GetSubscription(ctx context.Context, id uint64) (domain.Subscription, error) {
	return s.subscriptions.Get(ctx, id)
}

func (s *SubscriptionService) CreateSubscription(ctx context.Context, input domain.CreateSubscriptionInput) (domain.Subscription, error) {
	if !input.Frequency.Valid() {
		return domain.Subscription{}, domain.NewValidationError("frequency", "unknown frequency")
	}
	if input.Amount < 0 {
		return domain.Subscription{}, domain.NewValidationError("amount", "must not be negative")
	}
	return s.subscriptions.Create(ctx, input)
}

func (s *SubscriptionService) UpdateSubscription(ctx context.Context, id uint64, input domain.UpdateSubscriptionInput) (domain.Subscription, error) {
	if _, err := s.subscriptions.Get(ctx, id); err != nil {
		return domain.Subscription{}, err
	}
	if input.Frequency != nil && !input.Frequency.Valid() {
		return domain.Subscription{}, domain.NewValidationError("frequency", "unknown frequency")
	}
	if input.Amount != nil && *input.Amount < 0 {
		return domain.Subscription{}, domain.NewValidationError("amount", "must not be negative")
	}
	return s.subscriptions.Update(ctx, id, input)
}

func (s *SubscriptionService) DeleteSubscription(ctx context.Context, id uint64) error {
	if _, err := s.subscriptions.Get(ctx, id); err != nil {
		return err
	}
	return s.subscriptions.Delete(ctx, id)
}
