package service

import (
	"context"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type NotificationService struct {
	notifications ports.NotificationRepository
}

func NewNotificationService(notifications ports.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

var _ ports.NotificationService = (*NotificationService)(nil)

// ListNotifications only ever returns the caller's own notifications.
func (s *NotificationService) ListNotifications(ctx context.Context, principal domain.Principal, unreadOnly bool) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, principal.UserID, unreadOnly)
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, principal domain.Principal, id uint64) error {
	return s.notifications.MarkRead(ctx, id, principal.UserID)
}

func (s *NotificationService) MarkAllNotificationsRead(ctx context.Context, principal domain.Principal) (int64, error) {
	return s.notifications.MarkAllRead(ctx, principal.UserID)
}
