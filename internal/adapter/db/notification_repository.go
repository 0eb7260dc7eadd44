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

const selectNotificationsQuery = `
SELECT id, user_id, title, message, type, is_read, task_id, project_id, created_at
FROM notifications
`

type NotificationRepository struct {
	db *sqlx.DB
}

type notificationRow struct {
	ID        uint64        `db:"id"`
	UserID    uint64        `db:"user_id"`
	Title     string        `db:"title"`
	Message   string        `db:"message"`
	Type      string        `db:"type"`
	IsRead    bool          `db:"is_read"`
	TaskID    sql.NullInt64 `db:"task_id"`
	ProjectID sql.NullInt64 `db:"project_id"`
	CreatedAt time.Time     `db:"created_at"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListByUser returns the user's notifications newest-first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error) {
	query := selectNotificationsQuery + "WHERE user_id = ?"
	if unreadOnly {
		query += " AND is_read = FALSE"
	}
	query += " ORDER BY id DESC;"

	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, mapNotificationRow(row))
	}
	return notifications, nil
}

func (r *NotificationRepository) Create(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO notifications (user_id, title, message, type, task_id, project_id) VALUES (?, ?, ?, ?, ?, ?);",
		input.UserID, input.Title, input.Message, string(input.Type), input.TaskID, input.ProjectID)
	if err != nil {
		return domain.Notification{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Notification{}, err
	}

	var row notificationRow
	err = r.db.GetContext(ctx, &row, selectNotificationsQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Notification{}, domain.ErrNotificationNotFound
	}
	if err != nil {
		return domain.Notification{}, err
	}
	return mapNotificationRow(row), nil
}

// MarkRead only touches rows owned by userID; marking someone else's
// notification reports not found rather than forbidden.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uint64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE id = ? AND user_id = ?;",
		id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists int
		if err := r.db.GetContext(ctx, &exists,
			"SELECT 1 FROM notifications WHERE id = ? AND user_id = ?;", id, userID); errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotificationNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE user_id = ? AND is_read = FALSE;",
		userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func mapNotificationRow(row notificationRow) domain.Notification {
	notification := domain.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Message:   row.Message,
		Type:      domain.NotificationType(row.Type),
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt,
	}

	if row.TaskID.Valid {
		value := uint64(row.TaskID.Int64)
		notification.TaskID = &value
	}
	if row.ProjectID.Valid {
		value := uint64(row.ProjectID.Int64)
		notification.ProjectID = &value
	}

	return notification
}
