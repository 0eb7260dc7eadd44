package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusPaused, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

type Project struct {
	ID          uint64
	Name        string
	Description *string
	ClientID    *uint64
	Color       string
	Status      ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Assignees   []string
	Tags        []string
	// Progress is derived from the project's tasks on read; it is never
	// stored.
	Progress  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateProjectInput creates the project and its application links in one
// transaction; a failure on any link rolls back the project row too.
type CreateProjectInput struct {
	Name           string
	Description    *string
	ClientID       *uint64
	Color          string
	Status         ProjectStatus
	StartDate      *time.Time
	EndDate        *time.Time
	Assignees      []string
	Tags           []string
	ApplicationIDs []uint64
}

type UpdateProjectInput struct {
	Name         *string
	Description  *string
	ClientID     *uint64
	ClientIDSet  bool
	Color        *string
	Status       *ProjectStatus
	StartDate    *time.Time
	StartDateSet bool
	EndDate      *time.Time
	EndDateSet   bool
	Assignees    []string
	AssigneesSet bool
	Tags         []string
	TagsSet      bool
}

type ProjectFilter struct {
	ClientID *uint64
	Status   *ProjectStatus
}
