package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

func ToApplicationItems(applications []domain.Application) []dto.ApplicationItem {
	items := make([]dto.ApplicationItem, 0, len(applications))
	for _, application := range applications {
		items = append(items, ToApplicationItem(application))
	}
	return items
}

func ToApplicationItem(application domain.Application) dto.ApplicationItem {
	return dto.ApplicationItem{
		ID:        application.ID,
		Name:      application.Name,
		Type:      string(application.Type),
		Color:     application.Color,
		Status:    string(application.Status),
		CreatedAt: application.CreatedAt.Format(time.RFC3339),
		UpdatedAt: application.UpdatedAt.Format(time.RFC3339),
	}
}
