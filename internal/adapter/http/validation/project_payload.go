package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

var ErrInvalidProjectPayload = errors.New("invalid project payload")

func BuildCreateProjectInput(req dto.CreateProjectRequest, raw map[string]json.RawMessage) (domain.CreateProjectInput, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	color := "#6366F1"
	if req.Color != nil {
		color = *req.Color
	}

	status := domain.ProjectStatusActive
	if req.Status != nil {
		status = domain.ProjectStatus(*req.Status)
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	return domain.CreateProjectInput{
		Name:           name,
		Description:    req.Description,
		ClientID:       req.ClientID,
		Color:          color,
		Status:         status,
		StartDate:      startDate,
		EndDate:        endDate,
		Assignees:      req.Assignees,
		Tags:           req.Tags,
		ApplicationIDs: req.ApplicationIDs,
	}, nil
}

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasProjectUpdateFields(raw) {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		name = &value
	}

	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	var status *domain.ProjectStatus
	if req.Status != nil {
		value := domain.ProjectStatus(*req.Status)
		status = &value
	}

	if hasJSONField(raw, "color") && req.Color == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	clientIDSet := hasJSONField(raw, "client_id")
	if clientIDSet && !isJSONNull(raw["client_id"]) && req.ClientID == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	var startDate *time.Time
	startDateSet := hasJSONField(raw, "start_date")
	if startDateSet && !isJSONNull(raw["start_date"]) {
		if req.StartDate == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		startDate = &parsed
	}

	var endDate *time.Time
	endDateSet := hasJSONField(raw, "end_date")
	if endDateSet && !isJSONNull(raw["end_date"]) {
		if req.EndDate == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		endDate = &parsed
	}

	return domain.UpdateProjectInput{
		Name:         name,
		Description:  req.Description,
		ClientID:     req.ClientID,
		ClientIDSet:  clientIDSet,
		Color:        req.Color,
		Status:       status,
		StartDate:    startDate,
		StartDateSet: startDateSet,
		EndDate:      endDate,
		EndDateSet:   endDateSet,
		Assignees:    req.Assignees,
		AssigneesSet: hasJSONField(raw, "assignees"),
		Tags:         req.Tags,
		TagsSet:      hasJSONField(raw, "tags"),
	}, nil
}

func hasProjectUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "client_id") ||
		hasJSONField(raw, "color") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "start_date") ||
		hasJSONField(raw, "end_date") ||
		hasJSONField(raw, "assignees") ||
		hasJSONField(raw, "tags")
}
