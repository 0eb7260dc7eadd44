package domain

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrTimeEntryNotFound    = errors.New("time entry not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")

	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("login disabled for this account")

	// ErrForbidden is returned when the permission evaluator denies an
	// action. It must surface before any mutation is attempted.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a domain rule violation on a single field, e.g. a
// progress value outside 0-100 or an unknown status.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
