package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

func ToClientItems(clients []domain.Client) []dto.ClientItem {
	items := make([]dto.ClientItem, 0, len(clients))
	for _, client := range clients {
		items = append(items, ToClientItem(client))
	}
	return items
}

func ToClientItem(client domain.Client) dto.ClientItem {
	item := dto.ClientItem{
		ID:        client.ID,
		Name:      client.Name,
		Status:    string(client.Status),
		Tags:      emptyIfNilStrings(client.Tags),
		CreatedAt: client.CreatedAt.Format(time.RFC3339),
		UpdatedAt: client.UpdatedAt.Format(time.RFC3339),
	}

	if client.Email != nil {
		value := *client.Email
		item.Email = &value
	}
	if client.Phone != nil {
		value := *client.Phone
		item.Phone = &value
	}
	if client.Company != nil {
		value := *client.Company
		item.Company = &value
	}

	return item
}
