package dto

type UserItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	AvatarColor *string `json:"avatar_color,omitempty"`
	IsActive    bool    `json:"is_active"`
	CanLogin    bool    `json:"can_login"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateUserRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Email       string  `json:"email" binding:"required,email"`
	Role        string  `json:"role" binding:"required,oneof=admin manager member"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	AvatarColor *string `json:"avatar_color" binding:"omitempty,hexcolor"`
}

type UpdateUserRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin manager member"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	AvatarColor *string `json:"avatar_color" binding:"omitempty,hexcolor"`
	IsActive    *bool   `json:"is_active"`
}

type PermissionSetPayload struct {
	CanView   bool `json:"can_view"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
	CanManage bool `json:"can_manage"`
}

type ClientPermissionItem struct {
	UserID    uint64 `json:"user_id"`
	ClientID  uint64 `json:"client_id"`
	CanView   bool   `json:"can_view"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
	CanManage bool   `json:"can_manage"`
	UpdatedAt string `json:"updated_at"`
}

type ProjectPermissionItem struct {
	UserID    uint64 `json:"user_id"`
	ProjectID uint64 `json:"project_id"`
	CanView   bool   `json:"can_view"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
	CanManage bool   `json:"can_manage"`
	UpdatedAt string `json:"updated_at"`
}

type UserPermissionsItem struct {
	Clients  []ClientPermissionItem  `json:"clients"`
	Projects []ProjectPermissionItem `json:"projects"`
}
