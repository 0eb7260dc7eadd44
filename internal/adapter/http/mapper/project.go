package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:        project.ID,
		Name:      project.Name,
		Color:     project.Color,
		Status:    string(project.Status),
		Assignees: emptyIfNilStrings(project.Assignees),
		Tags:      emptyIfNilStrings(project.Tags),
		Progress:  project.Progress,
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}
	if project.ClientID != nil {
		value := *project.ClientID
		item.ClientID = &value
	}
	if project.StartDate != nil {
		value := project.StartDate.Format("2006-01-02")
		item.StartDate = &value
	}
	if project.EndDate != nil {
		value := project.EndDate.Format("2006-01-02")
		item.EndDate = &value
	}

	return item
}
