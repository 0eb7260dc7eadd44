package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type ProjectService struct {
	projects     ports.ProjectRepository
	applications ports.ApplicationRepository
	clients      ports.ClientRepository
	tasks        ports.TaskRepository
	activities   ports.ActivityRepository
	permissions  ports.PermissionService
	progress     ports.ProgressCache
}

func NewProjectService(
	projects ports.ProjectRepository,
	applications ports.ApplicationRepository,
	clients ports.ClientRepository,
	tasks ports.TaskRepository,
	activities ports.ActivityRepository,
	permissions ports.PermissionService,
	progress ports.ProgressCache,
) *ProjectService {
	return &ProjectService{
		projects:     projects,
		applications: applications,
		clients:      clients,
		tasks:        tasks,
		activities:   activities,
		permissions:  permissions,
		progress:     progress,
	}
}

var _ ports.ProjectService = (*ProjectService)(nil)

func (s *ProjectService) ListProjects(ctx context.Context, principal domain.Principal, filter domain.ProjectFilter) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		progress, err := s.projectProgress(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Progress = progress
	}
	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, principal domain.Principal, id uint64) (domain.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if err := s.authorize(ctx, principal, id, domain.ActionView); err != nil {
		return domain.Project{}, err
	}
	progress, err := s.projectProgress(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	project.Progress = progress
	return project, nil
}

// CreateProject inserts the project and all requested application links in
// one transaction; the repository rolls everything back if any link fails.
func (s *ProjectService) CreateProject(ctx context.Context, principal domain.Principal, input domain.CreateProjectInput) (domain.Project, error) {
	if err := requireMutatorRole(principal); err != nil {
		return domain.Project{}, err
	}
	if !input.Status.Valid() {
		return domain.Project{}, domain.NewValidationError("status", "unknown status")
	}
	if input.ClientID != nil {
		if _, err := s.clients.Get(ctx, *input.ClientID); err != nil {
			return domain.Project{}, err
		}
	}
	for _, applicationID := range input.ApplicationIDs {
		if _, err := s.applications.Get(ctx, applicationID); err != nil {
			return domain.Project{}, err
		}
	}

	project, err := s.projects.Create(ctx, input)
	if err != nil {
		return domain.Project{}, err
	}

	s.recordActivity(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityCreated,
		Description: fmt.Sprintf("created project %q", project.Name),
		ProjectID:   &project.ID,
		User:        principal.Name,
	})
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	if _, err := s.projects.Get(ctx, id); err != nil {
		return domain.Project{}, err
	}
	if err := s.authorize(ctx, principal, id, domain.ActionEdit); err != nil {
		return domain.Project{}, err
	}
	if input.Status != nil && !input.Status.Valid() {
		return domain.Project{}, domain.NewValidationError("status", "unknown status")
	}
	if input.ClientIDSet && input.ClientID != nil {
		if _, err := s.clients.Get(ctx, *input.ClientID); err != nil {
			return domain.Project{}, err
		}
	}

	project, err := s.projects.Update(ctx, id, input)
	if err != nil {
		return domain.Project{}, err
	}

	s.recordActivity(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityUpdated,
		Description: fmt.Sprintf("updated project %q", project.Name),
		ProjectID:   &project.ID,
		User:        principal.Name,
	})
	progress, err := s.projectProgress(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	project.Progress = progress
	return project, nil
}

// DeleteProject removes the project; the schema cascades its join and
// permission rows and detaches its tasks (project_id set to NULL).
func (s *ProjectService) DeleteProject(ctx context.Context, principal domain.Principal, id uint64) error {
	if _, err := s.projects.Get(ctx, id); err != nil {
		return err
	}
	if err := s.authorize(ctx, principal, id, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.progress.Invalidate(id)
	return nil
}

func (s *ProjectService) ListProjectApplications(ctx context.Context, principal domain.Principal, projectID uint64) ([]domain.Application, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, principal, projectID, domain.ActionView); err != nil {
		return nil, err
	}
	return s.projects.ListApplications(ctx, projectID)
}

// LinkApplication is idempotent: linking an already linked pair succeeds
// without touching anything, so the UI can retry freely.
func (s *ProjectService) LinkApplication(ctx context.Context, principal domain.Principal, projectID, applicationID uint64) error {
	project, application, err := s.resolveLink(ctx, principal, projectID, applicationID)
	if err != nil {
		return err
	}
	if err := s.projects.LinkApplication(ctx, projectID, applicationID); err != nil {
		return err
	}
	s.recordActivity(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityLinked,
		Description: fmt.Sprintf("linked application %q to project %q", application.Name, project.Name),
		ProjectID:   &project.ID,
		User:        principal.Name,
	})
	return nil
}

func (s *ProjectService) UnlinkApplication(ctx context.Context, principal domain.Principal, projectID, applicationID uint64) error {
	project, application, err := s.resolveLink(ctx, principal, projectID, applicationID)
	if err != nil {
		return err
	}
	if err := s.projects.UnlinkApplication(ctx, projectID, applicationID); err != nil {
		return err
	}
	s.recordActivity(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityUnlinked,
		Description: fmt.Sprintf("unlinked application %q from project %q", application.Name, project.Name),
		ProjectID:   &project.ID,
		User:        principal.Name,
	})
	return nil
}

func (s *ProjectService) resolveLink(ctx context.Context, principal domain.Principal, projectID, applicationID uint64) (domain.Project, domain.Application, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return domain.Project{}, domain.Application{}, err
	}
	application, err := s.applications.Get(ctx, applicationID)
	if err != nil {
		return domain.Project{}, domain.Application{}, err
	}
	if err := s.authorize(ctx, principal, projectID, domain.ActionManage); err != nil {
		return domain.Project{}, domain.Application{}, err
	}
	return project, application, nil
}

// projectProgress serves the derived completion percentage, consulting the
// cache first; task mutations invalidate entries so reads never see stale
// aggregates.
func (s *ProjectService) projectProgress(ctx context.Context, projectID uint64) (int, error) {
	if progress, ok := s.progress.Get(projectID); ok {
		return progress, nil
	}
	total, closed, err := s.tasks.CountByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	progress := domain.ProgressPercent(closed, total)
	s.progress.Set(projectID, progress)
	return progress, nil
}

func (s *ProjectService) authorize(ctx context.Context, principal domain.Principal, projectID uint64, action domain.Action) error {
	allowed, err := s.permissions.CanPerform(ctx, principal, domain.ResourceProject, projectID, action)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}
	return nil
}

func (s *ProjectService) recordActivity(ctx context.Context, input domain.CreateActivityInput) {
	if _, err := s.activities.Create(ctx, input); err != nil {
		zap.L().Warn("failed to record activity", zap.String("type", string(input.Type)), zap.Error(err))
	}
}
