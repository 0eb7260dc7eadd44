package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

// ToUserItem never exposes the password hash; CanLogin tells the client
// whether the record is a real account or directory-only.
func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CanLogin:  user.CanLogin(),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}

	if user.AvatarColor != nil {
		value := *user.AvatarColor
		item.AvatarColor = &value
	}

	return item
}

func ToUserPermissionsItem(permissions domain.UserPermissions) dto.UserPermissionsItem {
	item := dto.UserPermissionsItem{
		Clients:  make([]dto.ClientPermissionItem, 0, len(permissions.Clients)),
		Projects: make([]dto.ProjectPermissionItem, 0, len(permissions.Projects)),
	}
	for _, grant := range permissions.Clients {
		item.Clients = append(item.Clients, ToClientPermissionItem(grant))
	}
	for _, grant := range permissions.Projects {
		item.Projects = append(item.Projects, ToProjectPermissionItem(grant))
	}
	return item
}

func ToClientPermissionItem(grant domain.UserClientPermission) dto.ClientPermissionItem {
	return dto.ClientPermissionItem{
		UserID:    grant.UserID,
		ClientID:  grant.ClientID,
		CanView:   grant.CanView,
		CanEdit:   grant.CanEdit,
		CanDelete: grant.CanDelete,
		CanManage: grant.CanManage,
		UpdatedAt: grant.UpdatedAt.Format(time.RFC3339),
	}
}

func ToProjectPermissionItem(grant domain.UserProjectPermission) dto.ProjectPermissionItem {
	return dto.ProjectPermissionItem{
		UserID:    grant.UserID,
		ProjectID: grant.ProjectID,
		CanView:   grant.CanView,
		CanEdit:   grant.CanEdit,
		CanDelete: grant.CanDelete,
		CanManage: grant.CanManage,
		UpdatedAt: grant.UpdatedAt.Format(time.RFC3339),
	}
}
