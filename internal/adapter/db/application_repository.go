package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

const selectApplicationsQuery = `
SELECT id, name, type, color, status, created_at, updated_at
FROM applications
`

type ApplicationRepository struct {
	db *sqlx.DB
}

type applicationRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	Color     string    `db:"color"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	var rows []applicationRow
	if err := r.db.SelectContext(ctx, &rows, selectApplicationsQuery+"ORDER BY id;"); err != nil {
		return nil, err
	}

	applications := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		applications = append(applications, mapApplicationRow(row))
	}
	return applications, nil
}

func (r *ApplicationRepository) Get(ctx context.Context, id uint64) (domain.Application, error) {
	var row applicationRow
	err := r.db.GetContext(ctx, &row, selectApplicationsQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Application{}, domain.ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return mapApplicationRow(row), nil
}

func (r *ApplicationRepository) Create(ctx context.Context, input domain.CreateApplicationInput) (domain.Application, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO applications (name, type, color, status) VALUES (?, ?, ?, ?);",
		input.Name, string(input.Type), input.Color, string(input.Status))
	if err != nil {
		return domain.Application{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Application{}, err
	}
	return r.Get(ctx, uint64(id))
}

func (r *ApplicationRepository) Update(ctx context.Context, id uint64, input domain.UpdateApplicationInput) (domain.Application, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, string(*input.Type))
	}
	if input.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *input.Color)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE applications SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Application{}, err
		}
	}

	return r.Get(ctx, id)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM applications WHERE id = ?;", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func mapApplicationRow(row applicationRow) domain.Application {
	return domain.Application{
		ID:        row.ID,
		Name:      row.Name,
		Type:      domain.ApplicationType(row.Type),
		Color:     row.Color,
		Status:    domain.ApplicationStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
