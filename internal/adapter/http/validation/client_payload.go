package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

var ErrInvalidClientPayload = errors.New("invalid client payload")

func BuildCreateClientInput(req dto.CreateClientRequest, raw map[string]json.RawMessage) (domain.CreateClientInput, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateClientInput{}, ErrInvalidClientPayload
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateClientInput{}, ErrInvalidClientPayload
	}

	status := domain.ClientStatusActive
	if req.Status != nil {
		status = domain.ClientStatus(*req.Status)
	}

	return domain.CreateClientInput{
		Name:    name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Status:  status,
		Tags:    req.Tags,
	}, nil
}

func BuildUpdateClientInput(req dto.UpdateClientRequest, raw map[string]json.RawMessage) (domain.UpdateClientInput, error) {
	if !hasClientUpdateFields(raw) {
		return domain.UpdateClientInput{}, ErrInvalidClientPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateClientInput{}, ErrInvalidClientPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateClientInput{}, ErrInvalidClientPayload
		}
		name = &value
	}

	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateClientInput{}, ErrInvalidClientPayload
	}
	var status *domain.ClientStatus
	if req.Status != nil {
		value := domain.ClientStatus(*req.Status)
		status = &value
	}

	return domain.UpdateClientInput{
		Name:    name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Status:  status,
		Tags:    req.Tags,
		TagsSet: hasJSONField(raw, "tags"),
	}, nil
}

func hasClientUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "email") ||
		hasJSONField(raw, "phone") ||
		hasJSONField(raw, "company") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "tags")
}
