package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "progress") && req.Progress == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatusOpen
	if req.Status != nil {
		normalized, ok := domain.NormalizeTaskStatus(*req.Status)
		if !ok {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		status = normalized
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Title:         title,
		Description:   req.Description,
		Content:       req.Content,
		Status:        status,
		Priority:      priority,
		ProjectID:     req.ProjectID,
		ApplicationID: req.ApplicationID,
		Assignee:      req.Assignee,
		DueDate:       dueDate,
		Progress:      progress,
		Tags:          req.Tags,
		Dependencies:  req.Dependencies,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		normalized, ok := domain.NormalizeTaskStatus(*req.Status)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status = &normalized
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	if hasJSONField(raw, "progress") && req.Progress == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	contentSet := hasJSONField(raw, "content")
	if contentSet && !isJSONNull(raw["content"]) && req.Content == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	projectIDSet := hasJSONField(raw, "project_id")
	if projectIDSet && !isJSONNull(raw["project_id"]) && req.ProjectID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	applicationIDSet := hasJSONField(raw, "application_id")
	if applicationIDSet && !isJSONNull(raw["application_id"]) && req.ApplicationID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	assigneeSet := hasJSONField(raw, "assignee")
	if assigneeSet && !isJSONNull(raw["assignee"]) && req.Assignee == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsedDueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsedDueDate
	}

	tagsSet := hasJSONField(raw, "tags")
	dependenciesSet := hasJSONField(raw, "dependencies")

	return domain.UpdateTaskInput{
		Title:            title,
		Description:      req.Description,
		DescriptionSet:   descriptionSet,
		Content:          req.Content,
		ContentSet:       contentSet,
		Status:           status,
		Priority:         priority,
		ProjectID:        req.ProjectID,
		ProjectIDSet:     projectIDSet,
		ApplicationID:    req.ApplicationID,
		ApplicationIDSet: applicationIDSet,
		Assignee:         req.Assignee,
		AssigneeSet:      assigneeSet,
		DueDate:          dueDate,
		DueDateSet:       dueDateSet,
		Progress:         req.Progress,
		Tags:             req.Tags,
		TagsSet:          tagsSet,
		Dependencies:     req.Dependencies,
		DependenciesSet:  dependenciesSet,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "content") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "project_id") ||
		hasJSONField(raw, "application_id") ||
		hasJSONField(raw, "assignee") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "progress") ||
		hasJSONField(raw, "tags") ||
		hasJSONField(raw, "dependencies")
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
