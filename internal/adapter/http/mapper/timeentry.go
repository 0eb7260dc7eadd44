package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

func ToTimeEntryItems(entries []domain.TimeEntry) []dto.TimeEntryItem {
	items := make([]dto.TimeEntryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToTimeEntryItem(entry))
	}
	return items
}

func ToTimeEntryItem(entry domain.TimeEntry) dto.TimeEntryItem {
	item := dto.TimeEntryItem{
		ID:        entry.ID,
		TaskID:    entry.TaskID,
		UserID:    entry.UserID,
		Minutes:   entry.Minutes,
		Date:      entry.Date.Format("2006-01-02"),
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}

	if entry.Description != nil {
		value := *entry.Description
		item.Description = &value
	}

	return item
}
