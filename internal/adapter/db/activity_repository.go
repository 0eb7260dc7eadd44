package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

const selectActivitiesQuery = `
SELECT id, type, description, task_id, project_id, user_name, metadata, created_at
FROM activities
`

type ActivityRepository struct {
	db *sqlx.DB
}

type activityRow struct {
	ID          uint64        `db:"id"`
	Type        string        `db:"type"`
	Description string        `db:"description"`
	TaskID      sql.NullInt64 `db:"task_id"`
	ProjectID   sql.NullInt64 `db:"project_id"`
	User        string        `db:"user_name"`
	Metadata    []byte        `db:"metadata"`
	CreatedAt   time.Time     `db:"created_at"`
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns the feed newest-first.
func (r *ActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	query := selectActivitiesQuery
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if filter.ProjectID != nil {
		clauses = append(clauses, "project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.TaskID != nil {
		clauses = append(clauses, "task_id = ?")
		args = append(args, *filter.TaskID)
	}

	if len(clauses) > 0 {
		query += "WHERE " + strings.Join(clauses, " AND ") + "\n"
	}
	query += "ORDER BY id DESC LIMIT ? OFFSET ?;"
	args = append(args, filter.Limit, filter.Offset)

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, mapActivityRow(row))
	}
	return activities, nil
}

func (r *ActivityRepository) Create(ctx context.Context, input domain.CreateActivityInput) (domain.Activity, error) {
	var metadata any
	if len(input.Metadata) > 0 {
		metadata = []byte(input.Metadata)
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO activities (type, description, task_id, project_id, user_name, metadata) VALUES (?, ?, ?, ?, ?, ?);",
		string(input.Type), input.Description, input.TaskID, input.ProjectID, input.User, metadata)
	if err != nil {
		return domain.Activity{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Activity{}, err
	}

	var row activityRow
	err = r.db.GetContext(ctx, &row, selectActivitiesQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Activity{}, sql.ErrNoRows
	}
	if err != nil {
		return domain.Activity{}, err
	}
	return mapActivityRow(row), nil
}

func mapActivityRow(row activityRow) domain.Activity {
	activity := domain.Activity{
		ID:          row.ID,
		Type:        domain.ActivityType(row.Type),
		Description: row.Description,
		User:        row.User,
		CreatedAt:   row.CreatedAt,
	}

	if row.TaskID.Valid {
		value := uint64(row.TaskID.Int64)
		activity.TaskID = &value
	}
	if row.ProjectID.Valid {
		value := uint64(row.ProjectID.Int64)
		activity.ProjectID = &value
	}
	if len(row.Metadata) > 0 {
		activity.Metadata = json.RawMessage(row.Metadata)
	}

	return activity
}
