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

const selectTimeEntriesQuery = `
SELECT id, task_id, user_id, description, minutes, entry_date, created_at
FROM time_entries
`

type TimeEntryRepository struct {
	db *sqlx.DB
}

type timeEntryRow struct {
	ID          uint64         `db:"id"`
	TaskID      uint64         `db:"task_id"`
	UserID      uint64         `db:"user_id"`
	Description sql.NullString `db:"description"`
	Minutes     int            `db:"minutes"`
	EntryDate   time.Time      `db:"entry_date"`
	CreatedAt   time.Time      `db:"created_at"`
}

var _ ports.TimeEntryRepository = (*TimeEntryRepository)(nil)

func NewTimeEntryRepository(db *sqlx.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

func (r *TimeEntryRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.TimeEntry, error) {
	var rows []timeEntryRow
	if err := r.db.SelectContext(ctx, &rows, selectTimeEntriesQuery+"WHERE task_id = ? ORDER BY entry_date, id;", taskID); err != nil {
		return nil, err
	}

	entries := make([]domain.TimeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, mapTimeEntryRow(row))
	}
	return entries, nil
}

func (r *TimeEntryRepository) Create(ctx context.Context, taskID, userID uint64, input domain.CreateTimeEntryInput) (domain.TimeEntry, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO time_entries (task_id, user_id, description, minutes, entry_date) VALUES (?, ?, ?, ?, ?);",
		taskID, userID, input.Description, input.Minutes, input.Date)
	if err != nil {
		return domain.TimeEntry{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.TimeEntry{}, err
	}
	return r.Get(ctx, uint64(id))
}

func (r *TimeEntryRepository) Get(ctx context.Context, id uint64) (domain.TimeEntry, error) {
	var row timeEntryRow
	err := r.db.GetContext(ctx, &row, selectTimeEntriesQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TimeEntry{}, domain.ErrTimeEntryNotFound
	}
	if err != nil {
		return domain.TimeEntry{}, err
	}
	return mapTimeEntryRow(row), nil
}

func (r *TimeEntryRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM time_entries WHERE id = ?;", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTimeEntryNotFound
	}
	return nil
}

func mapTimeEntryRow(row timeEntryRow) domain.TimeEntry {
	entry := domain.TimeEntry{
		ID:        row.ID,
		TaskID:    row.TaskID,
		UserID:    row.UserID,
		Minutes:   row.Minutes,
		Date:      row.EntryDate,
		CreatedAt: row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		entry.Description = &value
	}

	return entry
}
