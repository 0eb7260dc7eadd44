package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

var ErrInvalidSubscriptionPayload = errors.New("invalid subscription payload")

func BuildCreateSubscriptionInput(req dto.CreateSubscriptionRequest) (domain.CreateSubscriptionInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateSubscriptionInput{}, ErrInvalidSubscriptionPayload
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return domain.CreateSubscriptionInput{}, ErrInvalidSubscriptionPayload
	}
	nextRenewal, err := parseOptionalDate(req.NextRenewalDate)
	if err != nil {
		return domain.CreateSubscriptionInput{}, ErrInvalidSubscriptionPayload
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return domain.CreateSubscriptionInput{
		Name:            name,
		Category:        req.Category,
		Frequency:       domain.SubscriptionFrequency(req.Frequency),
		Amount:          req.Amount,
		StartDate:       startDate,
		NextRenewalDate: nextRenewal,
		IsActive:        isActive,
	}, nil
}

func BuildUpdateSubscriptionInput(req dto.UpdateSubscriptionRequest, raw map[string]json.RawMessage) (domain.UpdateSubscriptionInput, error) {
	if !hasSubscriptionUpdateFields(raw) {
		return domain.UpdateSubscriptionInput{}, ErrInvalidSubscriptionPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateSubscriptionInput{}, ErrInvalidSubscriptionPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateSubscriptionInput{}, ErrInvalidSubscriptionPayload
		}
		name = &value
	}

	if hasJSONField(raw, "frequency") && req.Frequency == nil {
		return domain.UpdateSubscriptionInput{}, ErrInvalidSubscriptionPayload
	}
	var frequency *domain.SubscriptionFrequency
	if req.Frequency != nil {
		value := domain.SubscriptionFrequency(*req.Frequency)
		frequency = &value
	}

	var startDate *time.Time
	startDateSet := hasJSONField(raw, "start_date")
	if startDateSet && !isJSONNull(raw["start_date"]) {
		if req.StartDate == nil {
			return domain.UpdateSubscriptionInput{}, ErrInvalidSubscriptionPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return domain.UpdateSubscriptionInput{}, ErrInvalidSubscriptionPayload
		}
		startDate = &parsed
	}

	var nextRenewal *time.Time
	nextRenewalSet := hasJSONField(raw, "next_renewal_date")
	if nextRenewalSet && !isJSONNull(raw["next_renewal_date"]) {
		if req.NextRenewalDate == nil {
			return domain.UpdateSubscriptionInput{}, ErrInvalidSubscriptionPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.NextRenewalDate)
		if err != nil {
			return domain.UpdateSubscriptionInput{}, ErrInvalidSubscriptionPayload
		}
		nextRenewal = &parsed
	}

	return domain.UpdateSubscriptionInput{
		Name:               name,
		Category:           req.Category,
		CategorySet:        hasJSONField(raw, "category"),
		Frequency:          frequency,
		Amount:             req.Amount,
		StartDate:          startDate,
		StartDateSet:       startDateSet,
		NextRenewalDate:    nextRenewal,
		NextRenewalDateSet: nextRenewalSet,
		IsActive:           req.IsActive,
	}, nil
}

func hasSubscriptionUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "category") ||
		hasJSONField(raw, "frequency") ||
		hasJSONField(raw, "amount") ||
		hasJSONField(raw, "start_date") ||
		hasJSONField(raw, "next_renewal_date") ||
		hasJSONField(raw, "is_active")
}
