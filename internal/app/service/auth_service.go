package service

import (
	"context"
	"errors"

	"workdeck/internal/auth"
	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type AuthService struct {
	users  ports.UserRepository
	tokens *auth.TokenManager
	clock  ports.Clock
}

func NewAuthService(users ports.UserRepository, tokens *auth.TokenManager, clock ports.Clock) *AuthService {
	return &AuthService{users: users, tokens: tokens, clock: clock}
}

var _ ports.AuthService = (*AuthService)(nil)

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AuthSession, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same answer as a bad password so callers cannot probe for
			// registered addresses.
			return domain.AuthSession{}, domain.ErrInvalidCredentials
		}
		return domain.AuthSession{}, err
	}
	if !user.CanLogin() {
		return domain.AuthSession{}, domain.ErrLoginDisabled
	}
	if !auth.ComparePassword(*user.PasswordHash, password) {
		return domain.AuthSession{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user, s.clock.Now())
	if err != nil {
		return domain.AuthSession{}, err
	}
	return domain.AuthSession{Token: token, User: user}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, principal domain.Principal) (domain.User, error) {
	return s.users.Get(ctx, principal.UserID)
}
