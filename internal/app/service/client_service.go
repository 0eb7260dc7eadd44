package service

import (
	"context"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type ClientService struct {
	clients     ports.ClientRepository
	permissions ports.PermissionService
}

func NewClientService(clients ports.ClientRepository, permissions ports.PermissionService) *ClientService {
	return &ClientService{clients: clients, permissions: permissions}
}

var _ ports.ClientService = (*ClientService)(nil)

func (s *ClientService) ListClients(ctx context.Context, principal domain.Principal, filter domain.ClientFilter) ([]domain.Client, error) {
	return s.clients.List(ctx, filter)
}

func (s *ClientService) GetClient(ctx context.Context, principal domain.Principal, id uint64) (domain.Client, error) {
	client, err := s.clients.Get(ctx, id)
	if err != nil {
		return domain.Client{}, err
	}
	if err := s.authorize(ctx, principal, id, domain.ActionView); err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

func (s *ClientService) CreateClient(ctx context.Context, principal domain.Principal, input domain.CreateClientInput) (domain.Client, error) {
	// No permission row can exist for a client that does not exist yet, so
	// creation is gated by role alone.
	if err := requireMutatorRole(principal); err != nil {
		return domain.Client{}, err
	}
	if !input.Status.Valid() {
		return domain.Client{}, domain.NewValidationError("status", "unknown status")
	}
	return s.clients.Create(ctx, input)
}

func (s *ClientService) UpdateClient(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateClientInput) (domain.Client, error) {
	if _, err := s.clients.Get(ctx, id); err != nil {
		return domain.Client{}, err
	}
	if err := s.authorize(ctx, principal, id, domain.ActionEdit); err != nil {
		return domain.Client{}, err
	}
	if input.Status != nil && !input.Status.Valid() {
		return domain.Client{}, domain.NewValidationError("status", "unknown status")
	}
	return s.clients.Update(ctx, id, input)
}

// DeleteClient removes the client; the schema cascades its permission rows
// and detaches its projects (client_id set to NULL).
func (s *ClientService) DeleteClient(ctx context.Context, principal domain.Principal, id uint64) error {
	if _, err := s.clients.Get(ctx, id); err != nil {
		return err
	}
	if err := s.authorize(ctx, principal, id, domain.ActionDelete); err != nil {
		return err
	}
	return s.clients.Delete(ctx, id)
}

func (s *ClientService) authorize(ctx context.Context, principal domain.Principal, clientID uint64, action domain.Action) error {
	allowed, err := s.permissions.CanPerform(ctx, principal, domain.ResourceClient, clientID, action)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}
	return nil
}
