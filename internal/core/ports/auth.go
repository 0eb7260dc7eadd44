package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.AuthSession, error)
	CurrentUser(ctx context.Context, principal domain.Principal) (domain.User, error)
}
