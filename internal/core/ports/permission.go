package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type PermissionRepository interface {
	// GetClient and GetProject report found=false when no row exists; the
	// evaluator treats that as deny, never as an error.
	GetClient(ctx context.Context, userID, clientID uint64) (domain.PermissionSet, bool, error)
	GetProject(ctx context.Context, userID, projectID uint64) (domain.PermissionSet, bool, error)
	UpsertClient(ctx context.Context, userID, clientID uint64, perms domain.PermissionSet) (domain.UserClientPermission, error)
	UpsertProject(ctx context.Context, userID, projectID uint64, perms domain.PermissionSet) (domain.UserProjectPermission, error)
	ListByUser(ctx context.Context, userID uint64) (domain.UserPermissions, error)
}

type PermissionService interface {
	// CanPerform is the single permission decision point: global-admin
	// short-circuit first, then the row lookup, denying when no row grants
	// the action.
	CanPerform(ctx context.Context, principal domain.Principal, resource domain.ResourceType, resourceID uint64, action domain.Action) (bool, error)
	ListUserPermissions(ctx context.Context, principal domain.Principal, userID uint64) (domain.UserPermissions, error)
	AssignClientPermission(ctx context.Context, principal domain.Principal, userID, clientID uint64, perms domain.PermissionSet) (domain.UserClientPermission, error)
	AssignProjectPermission(ctx context.Context, principal domain.Principal, userID, projectID uint64, perms domain.PermissionSet) (domain.UserProjectPermission, error)
}
