package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uint64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByName(ctx context.Context, name string) (domain.User, error)
	Create(ctx context.Context, input domain.CreateUserInput, passwordHash *string) (domain.User, error)
	Update(ctx context.Context, id uint64, input domain.UpdateUserInput, passwordHash *string) (domain.User, error)
	Delete(ctx context.Context, id uint64) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uint64) (domain.User, error)
	CreateUser(ctx context.Context, principal domain.Principal, input domain.CreateUserInput) (domain.User, error)
	UpdateUser(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, principal domain.Principal, id uint64) error
}
