package domain

import "time"

type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
)

func (a Action) Valid() bool {
	switch a {
	case ActionView, ActionEdit, ActionDelete, ActionManage:
		return true
	}
	return false
}

type ResourceType string

const (
	ResourceClient  ResourceType = "client"
	ResourceProject ResourceType = "project"
)

// PermissionSet holds the four grant booleans of a permission row. A zero
// PermissionSet grants nothing, which is also what the absence of a row
// means: access is denied unless a row explicitly grants it.
type PermissionSet struct {
	CanView   bool
	CanEdit   bool
	CanDelete bool
	CanManage bool
}

func (p PermissionSet) Allows(action Action) bool {
	switch action {
	case ActionView:
		return p.CanView
	case ActionEdit:
		return p.CanEdit
	case ActionDelete:
		return p.CanDelete
	case ActionManage:
		return p.CanManage
	}
	return false
}

// UserClientPermission grants a user capabilities on one client and, through
// it, on the client's projects.
type UserClientPermission struct {
	UserID    uint64
	ClientID  uint64
	PermissionSet
	UpdatedAt time.Time
}

// UserProjectPermission grants capabilities on a single project regardless
// of the owning client.
type UserProjectPermission struct {
	UserID    uint64
	ProjectID uint64
	PermissionSet
	UpdatedAt time.Time
}

// UserPermissions is the full grant picture for one user across both
// resource kinds.
type UserPermissions struct {
	Clients  []UserClientPermission
	Projects []UserProjectPermission
}
