package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type ClientRepository interface {
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error)
	Get(ctx context.Context, id uint64) (domain.Client, error)
	Create(ctx context.Context, input domain.CreateClientInput) (domain.Client, error)
	Update(ctx context.Context, id uint64, input domain.UpdateClientInput) (domain.Client, error)
	Delete(ctx context.Context, id uint64) error
}

type ClientService interface {
	ListClients(ctx context.Context, principal domain.Principal, filter domain.ClientFilter) ([]domain.Client, error)
	GetClient(ctx context.Context, principal domain.Principal, id uint64) (domain.Client, error)
	CreateClient(ctx context.Context, principal domain.Principal, input domain.CreateClientInput) (domain.Client, error)
	UpdateClient(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateClientInput) (domain.Client, error)
	DeleteClient(ctx context.Context, principal domain.Principal, id uint64) error
}
