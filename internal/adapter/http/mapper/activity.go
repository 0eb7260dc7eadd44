package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

func ToActivityItems(activities []domain.Activity) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0, len(activities))
	for _, activity := range activities {
		items = append(items, ToActivityItem(activity))
	}
	return items
}

func ToActivityItem(activity domain.Activity) dto.ActivityItem {
	item := dto.ActivityItem{
		ID:          activity.ID,
		Type:        string(activity.Type),
		Description: activity.Description,
		User:        activity.User,
		Metadata:    activity.Metadata,
		CreatedAt:   activity.CreatedAt.Format(time.RFC3339),
	}

	if activity.TaskID != nil {
		value := *activity.TaskID
		item.TaskID = &value
	}
	if activity.ProjectID != nil {
		value := *activity.ProjectID
		item.ProjectID = &value
	}

	return item
}
