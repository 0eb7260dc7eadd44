package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:           task.ID,
		Title:        task.Title,
		Status:       string(task.Status),
		Priority:     string(task.Priority),
		Progress:     task.Progress,
		Tags:         emptyIfNilStrings(task.Tags),
		Dependencies: emptyIfNilIDs(task.Dependencies),
		CreatedAt:    task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.Content != nil {
		value := *task.Content
		item.Content = &value
	}
	if task.ProjectID != nil {
		value := *task.ProjectID
		item.ProjectID = &value
	}
	if task.ApplicationID != nil {
		value := *task.ApplicationID
		item.ApplicationID = &value
	}
	if task.Assignee != nil {
		value := *task.Assignee
		item.Assignee = &value
	}
	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	return item
}

func emptyIfNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func emptyIfNilIDs(values []uint64) []uint64 {
	if values == nil {
		return []uint64{}
	}
	return values
}
