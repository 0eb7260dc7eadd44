package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type ApplicationRepository interface {
	List(ctx context.Context) ([]domain.Application, error)
	Get(ctx context.Context, id uint64) (domain.Application, error)
	Create(ctx context.Context, input domain.CreateApplicationInput) (domain.Application, error)
	Update(ctx context.Context, id uint64, input domain.UpdateApplicationInput) (domain.Application, error)
	Delete(ctx context.Context, id uint64) error
}

type ApplicationService interface {
	ListApplications(ctx context.Context) ([]domain.Application, error)
	GetApplication(ctx context.Context, id uint64) (domain.Application, error)
	CreateApplication(ctx context.Context, principal domain.Principal, input domain.CreateApplicationInput) (domain.Application, error)
	UpdateApplication(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateApplicationInput) (domain.Application, error)
	DeleteApplication(ctx context.Context, principal domain.Principal, id uint64) error
}
