package domain

import "time"

type ApplicationType string

const (
	ApplicationTypeWeb    ApplicationType = "Web"
	ApplicationTypeMobile ApplicationType = "Mobile"
	ApplicationTypeWatch  ApplicationType = "Watch"
)

func (t ApplicationType) Valid() bool {
	switch t {
	case ApplicationTypeWeb, ApplicationTypeMobile, ApplicationTypeWatch:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationStatusActive   ApplicationStatus = "active"
	ApplicationStatusInactive ApplicationStatus = "inactive"
)

func (s ApplicationStatus) Valid() bool {
	return s == ApplicationStatusActive || s == ApplicationStatusInactive
}

// Application is a platform target (Web/Mobile/Watch) linked to projects
// through the project_applications join table.
type Application struct {
	ID        uint64
	Name      string
	Type      ApplicationType
	Color     string
	Status    ApplicationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateApplicationInput struct {
	Name   string
	Type   ApplicationType
	Color  string
	Status ApplicationStatus
}

type UpdateApplicationInput struct {
	Name   *string
	Type   *ApplicationType
	Color  *string
	Status *ApplicationStatus
}
