package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type ProjectRepository interface {
	List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	Get(ctx context.Context, id uint64) (domain.Project, error)
	// Create inserts the project row and its application links in a single
	// transaction.
	Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	Update(ctx context.Context, id uint64, input domain.UpdateProjectInput) (domain.Project, error)
	Delete(ctx context.Context, id uint64) error
	ListApplications(ctx context.Context, projectID uint64) ([]domain.Application, error)
	// LinkApplication and UnlinkApplication are idempotent: repeated calls
	// with the same pair succeed without changing anything.
	LinkApplication(ctx context.Context, projectID, applicationID uint64) error
	UnlinkApplication(ctx context.Context, projectID, applicationID uint64) error
}

type ProjectService interface {
	ListProjects(ctx context.Context, principal domain.Principal, filter domain.ProjectFilter) ([]domain.Project, error)
	GetProject(ctx context.Context, principal domain.Principal, id uint64) (domain.Project, error)
	CreateProject(ctx context.Context, principal domain.Principal, input domain.CreateProjectInput) (domain.Project, error)
	UpdateProject(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, principal domain.Principal, id uint64) error
	ListProjectApplications(ctx context.Context, principal domain.Principal, projectID uint64) ([]domain.Application, error)
	LinkApplication(ctx context.Context, principal domain.Principal, projectID, applicationID uint64) error
	UnlinkApplication(ctx context.Context, principal domain.Principal, projectID, applicationID uint64) error
}
