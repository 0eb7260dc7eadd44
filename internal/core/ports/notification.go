package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type NotificationRepository interface {
	// ListByUser returns the user's notifications newest-first.
	ListByUser(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error)
	Create(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uint64) error
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, principal domain.Principal, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, principal domain.Principal, id uint64) error
	MarkAllNotificationsRead(ctx context.Context, principal domain.Principal) (int64, error)
}
