package service

import (
	"context"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type ApplicationService struct {
	applications ports.ApplicationRepository
}

func NewApplicationService(applications ports.ApplicationRepository) *ApplicationService {
	return &ApplicationService{applications: applications}
}

var _ ports.ApplicationService = (*ApplicationService)(nil)

func (s *ApplicationService) ListApplications(ctx context.Context) ([]domain.Application, error) {
	return s.applications.List(ctx)
}

func (s *ApplicationService) GetApplication(ctx context.Context, id uint64) (domain.Application, error) {
	return s.applications.Get(ctx, id)
}

func (s *ApplicationService) CreateApplication(ctx context.Context, principal domain.Principal, input domain.CreateApplicationInput) (domain.Application, error) {
	if err := requireMutatorRole(principal); err != nil {
		return domain.Application{}, err
	}
	if !input.Type.Valid() {
		return domain.Application{}, domain.NewValidationError("type", "unknown application type")
	}
	if !input.Status.Valid() {
		return domain.Application{}, domain.NewValidationError("status", "unknown status")
	}
	return s.applications.Create(ctx, input)
}

func (s *ApplicationService) UpdateApplication(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateApplicationInput) (domain.Application, error) {
	if err := requireMutatorRole(principal); err != nil {
		return domain.Application{}, err
	}
	if _, err := s.applications.Get(ctx, id); err != nil {
		return domain.Application{}, err
	}
	if input.Type != nil && !input.Type.Valid() {
		return domain.Application{}, domain.NewValidationError("type", "unknown application type")
	}
	if input.Status != nil && !input.Status.Valid() {
		return domain.Application{}, domain.NewValidationError("status", "unknown status")
	}
	return s.applications.Update(ctx, id, input)
}

// DeleteApplication removes the application; its project links cascade and
// tasks referencing it are detached (application_id set to NULL).
func (s *ApplicationService) DeleteApplication(ctx context.Context, principal domain.Principal, id uint64) error {
	if err := requireMutatorRole(principal); err != nil {
		return err
	}
	if _, err := s.applications.Get(ctx, id); err != nil {
		return err
	}
	return s.applications.Delete(ctx, id)
}
