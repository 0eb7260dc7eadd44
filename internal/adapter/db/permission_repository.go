package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

const upsertClientPermissionQuery = `
INSERT INTO user_client_permissions (user_id, client_id, can_view, can_edit, can_delete, can_manage)
VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  can_view = VALUES(can_view),
  can_edit = VALUES(can_edit),
  can_delete = VALUES(can_delete),
  can_manage = VALUES(can_manage);
`

const upsertProjectPermissionQuery = `
INSERT INTO user_project_permissions (user_id, project_id, can_view, can_edit, can_delete, can_manage)
VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  can_view = VALUES(can_view),
  can_edit = VALUES(can_edit),
  can_delete = VALUES(can_delete),
  can_manage = VALUES(can_manage);
`

type PermissionRepository struct {
	db *sqlx.DB
}

type permissionRow struct {
	UserID     uint64    `db:"user_id"`
	ResourceID uint64    `db:"resource_id"`
	CanView    bool      `db:"can_view"`
	CanEdit    bool      `db:"can_edit"`
	CanDelete  bool      `db:"can_delete"`
	CanManage  bool      `db:"can_manage"`
	UpdatedAt  time.Time `db:"updated_at"`
}

var _ ports.PermissionRepository = (*PermissionRepository)(nil)

func NewPermissionRepository(db *sqlx.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) GetClient(ctx context.Context, userID, clientID uint64) (domain.PermissionSet, bool, error) {
	return r.getSet(ctx,
		"SELECT can_view, can_edit, can_delete, can_manage FROM user_client_permissions WHERE user_id = ? AND client_id = ?;",
		userID, clientID)
}

func (r *PermissionRepository) GetProject(ctx context.Context, userID, projectID uint64) (domain.PermissionSet, bool, error) {
	return r.getSet(ctx,
		"SELECT can_view, can_edit, can_delete, can_manage FROM user_project_permissions WHERE user_id = ? AND project_id = ?;",
		userID, projectID)
}

func (r *PermissionRepository) getSet(ctx context.Context, query string, userID, resourceID uint64) (domain.PermissionSet, bool, error) {
	var row struct {
		CanView   bool `db:"can_view"`
		CanEdit   bool `db:"can_edit"`
		CanDelete bool `db:"can_delete"`
		CanManage bool `db:"can_manage"`
	}
	err := r.db.GetContext(ctx, &row, query, userID, resourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PermissionSet{}, false, nil
	}
	if err != nil {
		return domain.PermissionSet{}, false, err
	}
	return domain.PermissionSet{
		CanView:   row.CanView,
		CanEdit:   row.CanEdit,
		CanDelete: row.CanDelete,
		CanManage: row.CanManage,
	}, true, nil
}

func (r *PermissionRepository) UpsertClient(ctx context.Context, userID, clientID uint64, perms domain.PermissionSet) (domain.UserClientPermission, error) {
	_, err := r.db.ExecContext(ctx, upsertClientPermissionQuery,
		userID, clientID, perms.CanView, perms.CanEdit, perms.CanDelete, perms.CanManage)
	if err != nil {
		return domain.UserClientPermission{}, err
	}

	var row permissionRow
	err = r.db.GetContext(ctx, &row,
		"SELECT user_id, client_id AS resource_id, can_view, can_edit, can_delete, can_manage, updated_at FROM user_client_permissions WHERE user_id = ? AND client_id = ?;",
		userID, clientID)
	if err != nil {
		return domain.UserClientPermission{}, err
	}

	return domain.UserClientPermission{
		UserID:        row.UserID,
		ClientID:      row.ResourceID,
		PermissionSet: mapPermissionSet(row),
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func (r *PermissionRepository) UpsertProject(ctx context.Context, userID, projectID uint64, perms domain.PermissionSet) (domain.UserProjectPermission, error) {
	_, err := r.db.ExecContext(ctx, upsertProjectPermissionQuery,
		userID, projectID, perms.CanView, perms.CanEdit, perms.CanDelete, perms.CanManage)
	if err != nil {
		return domain.UserProjectPermission{}, err
	}

	var row permissionRow
	err = r.db.GetContext(ctx, &row,
		"SELECT user_id, project_id AS resource_id, can_view, can_edit, can_delete, can_manage, updated_at FROM user_project_permissions WHERE user_id = ? AND project_id = ?;",
		userID, projectID)
	if err != nil {
		return domain.UserProjectPermission{}, err
	}

	return domain.UserProjectPermission{
		UserID:        row.UserID,
		ProjectID:     row.ResourceID,
		PermissionSet: mapPermissionSet(row),
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func (r *PermissionRepository) ListByUser(ctx context.Context, userID uint64) (domain.UserPermissions, error) {
	var clientRows []permissionRow
	err := r.db.SelectContext(ctx, &clientRows,
		"SELECT user_id, client_id AS resource_id, can_view, can_edit, can_delete, can_manage, updated_at FROM user_client_permissions WHERE user_id = ? ORDER BY client_id;",
		userID)
	if err != nil {
		return domain.UserPermissions{}, err
	}

	var projectRows []permissionRow
	err = r.db.SelectContext(ctx, &projectRows,
		"SELECT user_id, project_id AS resource_id, can_view, can_edit, can_delete, can_manage, updated_at FROM user_project_permissions WHERE user_id = ? ORDER BY project_id;",
		userID)
	if err != nil {
		return domain.UserPermissions{}, err
	}

	permissions := domain.UserPermissions{
		Clients:  make([]domain.UserClientPermission, 0, len(clientRows)),
		Projects: make([]domain.UserProjectPermission, 0, len(projectRows)),
	}
	for _, row := range clientRows {
		permissions.Clients = append(permissions.Clients, domain.UserClientPermission{
			UserID:        row.UserID,
			ClientID:      row.ResourceID,
			PermissionSet: mapPermissionSet(row),
			UpdatedAt:     row.UpdatedAt,
		})
	}
	for _, row := range projectRows {
		permissions.Projects = append(permissions.Projects, domain.UserProjectPermission{
			UserID:        row.UserID,
			ProjectID:     row.ResourceID,
			PermissionSet: mapPermissionSet(row),
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return permissions, nil
}

func mapPermissionSet(row permissionRow) domain.PermissionSet {
	return domain.PermissionSet{
		CanView:   row.CanView,
		CanEdit:   row.CanEdit,
		CanDelete: row.CanDelete,
		CanManage: row.CanManage,
	}
}
