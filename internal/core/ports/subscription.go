package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type SubscriptionRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Subscription, error)
	Get(ctx context.Context, id uint64) (domain.Subscription, error)
	Create(ctx context.Context, input domain.CreateSubscriptionInput) (domain.Subscription, error)
	Update(ctx context.Context, id uint64, input domain.UpdateSubscriptionInput) (domain.Subscription, error)
	Delete(ctx context.Context, id uint64) error
}

type SubscriptionService interface {
	ListSubscriptions(ctx context.Context, activeOnly bool) ([]domain.Subscription, error)
	GetSubscription(ctx context.Context, id uint64) (domain.Subscription, error)
	CreateSubscription(ctx context.Context, input domain.CreateSubscriptionInput) (domain.Subscription, error)
	UpdateSubscription(ctx context.Context, id uint64, input domain.UpdateSubscriptionInput) (domain.Subscription, error)
	DeleteSubscription(ctx context.Context, id uint64) error
}
