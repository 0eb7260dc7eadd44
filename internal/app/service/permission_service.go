package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

// PermissionService is the single decision point for resource access. Every
// check runs the same two branches: a global-admin short-circuit, then a
// deny-unless-granted row lookup. No other code path grants access.
type PermissionService struct {
	permissions ports.PermissionRepository
	projects    ports.ProjectRepository
	clients     ports.ClientRepository
	users       ports.UserRepository
	activities  ports.ActivityRepository
}

func NewPermissionService(
	permissions ports.PermissionRepository,
	projects ports.ProjectRepository,
	clients ports.ClientRepository,
	users ports.UserRepository,
	activities ports.ActivityRepository,
) *PermissionService {
	return &PermissionService{
		permissions: permissions,
		projects:    projects,
		clients:     clients,
		users:       users,
		activities:  activities,
	}
}

var _ ports.PermissionService = (*PermissionService)(nil)

func (s *PermissionService) CanPerform(ctx context.Context, principal domain.Principal, resource domain.ResourceType, resourceID uint64, action domain.Action) (bool, error) {
	// Branch 1: a global admin may do anything.
	if principal.IsAdmin() {
		return true, nil
	}

	// Branch 2: deny unless a row explicitly grants the action. An unknown
	// user simply has no rows, which falls out as deny.
	switch resource {
	case domain.ResourceClient:
		set, found, err := s.permissions.GetClient(ctx, principal.UserID, resourceID)
		if err != nil {
			return false, err
		}
		return found && set.Allows(action), nil

	case domain.ResourceProject:
		set, found, err := s.permissions.GetProject(ctx, principal.UserID, resourceID)
		if err != nil {
			return false, err
		}
		if found && set.Allows(action) {
			return true, nil
		}
		// A project-scoped row did not grant it; the owning client's row
		// may. A project without a client has nothing further to consult.
		project, err := s.projects.Get(ctx, resourceID)
		if err != nil {
			if errors.Is(err, domain.ErrProjectNotFound) {
				return false, nil
			}
			return false, err
		}
		if project.ClientID == nil {
			return false, nil
		}
		set, found, err = s.permissions.GetClient(ctx, principal.UserID, *project.ClientID)
		if err != nil {
			return false, err
		}
		return found && set.Allows(action), nil
	}

	return false, nil
}

func (s *PermissionService) ListUserPermissions(ctx context.Context, principal domain.Principal, userID uint64) (domain.UserPermissions, error) {
	// Users may inspect their own grants; everything else is admin surface.
	if !principal.IsAdmin() && principal.UserID != userID {
		return domain.UserPermissions{}, domain.ErrForbidden
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return domain.UserPermissions{}, err
	}
	return s.permissions.ListByUser(ctx, userID)
}

func (s *PermissionService) AssignClientPermission(ctx context.Context, principal domain.Principal, userID, clientID uint64, perms domain.PermissionSet) (domain.UserClientPermission, error) {
	allowed, err := s.CanPerform(ctx, principal, domain.ResourceClient, clientID, domain.ActionManage)
	if err != nil {
		return domain.UserClientPermission{}, err
	}
	if !allowed {
		return domain.UserClientPermission{}, domain.ErrForbidden
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return domain.UserClientPermission{}, err
	}
	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return domain.UserClientPermission{}, err
	}

	row, err := s.permissions.UpsertClient(ctx, userID, clientID, perms)
	if err != nil {
		return domain.UserClientPermission{}, err
	}
	s.recordAssignment(ctx, principal, fmt.Sprintf("updated permissions on client %q", client.Name), userID, perms, nil)
	return row, nil
}

func (s *PermissionService) AssignProjectPermission(ctx context.Context, principal domain.Principal, userID, projectID uint64, perms domain.PermissionSet) (domain.UserProjectPermission, error) {
	allowed, err := s.CanPerform(ctx, principal, domain.ResourceProject, projectID, domain.ActionManage)
	if err != nil {
		return domain.UserProjectPermission{}, err
	}
	if !allowed {
		return domain.UserProjectPermission{}, domain.ErrForbidden
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return domain.UserProjectPermission{}, err
	}
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return domain.UserProjectPermission{}, err
	}

	row, err := s.permissions.UpsertProject(ctx, userID, projectID, perms)
	if err != nil {
		return domain.UserProjectPermission{}, err
	}
	s.recordAssignment(ctx, principal, fmt.Sprintf("updated permissions on project %q", project.Name), userID, perms, &projectID)
	return row, nil
}

func (s *PermissionService) recordAssignment(ctx context.Context, principal domain.Principal, description string, targetUserID uint64, perms domain.PermissionSet, projectID *uint64) {
	metadata, _ := json.Marshal(map[string]any{
		"target_user_id": targetUserID,
		"can_view":       perms.CanView,
		"can_edit":       perms.CanEdit,
		"can_delete":     perms.CanDelete,
		"can_manage":     perms.CanManage,
	})
	if _, err := s.activities.Create(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityPermissionChanged,
		Description: description,
		ProjectID:   projectID,
		User:        principal.Name,
		Metadata:    metadata,
	}); err != nil {
		zap.L().Warn("failed to record permission activity", zap.Error(err))
	}
}
