package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotificationItem(notification))
	}
	return items
}

func ToNotificationItem(notification domain.Notification) dto.NotificationItem {
	item := dto.NotificationItem{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}

	if notification.TaskID != nil {
		value := *notification.TaskID
		item.TaskID = &value
	}
	if notification.ProjectID != nil {
		value := *notification.ProjectID
		item.ProjectID = &value
	}

	return item
}
