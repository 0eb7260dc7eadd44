package service

import (
	"context"

	"workdeck/internal/auth"
	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type UserService struct {
	users      ports.UserRepository
	bcryptCost int
}

func NewUserService(users ports.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

var _ ports.UserService = (*UserService)(nil)

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.users.Get(ctx, id)
}

// CreateUser is admin-only. A nil password creates a directory-only member
// that cannot authenticate.
func (s *UserService) CreateUser(ctx context.Context, principal domain.Principal, input domain.CreateUserInput) (domain.User, error) {
	if !principal.IsAdmin() {
		return domain.User{}, domain.ErrForbidden
	}
	if !input.Role.Valid() {
		return domain.User{}, domain.NewValidationError("role", "unknown role")
	}
	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return domain.User{}, err
	}
	return s.users.Create(ctx, input, hash)
}

// UpdateUser lets admins change anything on anyone. Non-admins may only touch
// their own name, avatar color and password; email, role and active flag stay
// admin-controlled.
func (s *UserService) UpdateUser(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateUserInput) (domain.User, error) {
	if _, err := s.users.Get(ctx, id); err != nil {
		return domain.User{}, err
	}
	if !principal.IsAdmin() {
		if principal.UserID != id {
			return domain.User{}, domain.ErrForbidden
		}
		if input.Email != nil || input.Role != nil || input.IsActive != nil {
			return domain.User{}, domain.ErrForbidden
		}
	}
	if input.Role != nil && !input.Role.Valid() {
		return domain.User{}, domain.NewValidationError("role", "unknown role")
	}
	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return domain.User{}, err
	}
	return s.users.Update(ctx, id, input, hash)
}

// DeleteUser is admin-only and self-deletion is refused so an instance cannot
// lose its last administrator by accident.
func (s *UserService) DeleteUser(ctx context.Context, principal domain.Principal, id uint64) error {
	if !principal.IsAdmin() {
		return domain.ErrForbidden
	}
	if principal.UserID == id {
		return domain.ErrForbidden
	}
	if _, err := s.users.Get(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

func (s *UserService) hashPassword(password *string) (*string, error) {
	if password == nil {
		return nil, nil
	}
	if *password == "" {
		return nil, domain.NewValidationError("password", "must not be empty")
	}
	hash, err := auth.HashPassword(*password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	return &hash, nil
}
