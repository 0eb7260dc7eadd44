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

const selectProjectsQuery = `
SELECT
  id, name, description, client_id, color, status, start_date, end_date,
  assignees, tags, created_at, updated_at
FROM projects
`

const insertProjectQuery = `
INSERT INTO projects
  (name, description, client_id, color, status, start_date, end_date, assignees, tags)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const selectProjectApplicationsQuery = `
SELECT a.id, a.name, a.type, a.color, a.status, a.created_at, a.updated_at
FROM applications a
INNER JOIN project_applications pa ON pa.application_id = a.id
WHERE pa.project_id = ?
ORDER BY a.id;
`

const linkApplicationQuery = `
INSERT IGNORE INTO project_applications (project_id, application_id)
VALUES (?, ?);
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	ClientID    sql.NullInt64  `db:"client_id"`
	Color       string         `db:"color"`
	Status      string         `db:"status"`
	StartDate   sql.NullTime   `db:"start_date"`
	EndDate     sql.NullTime   `db:"end_date"`
	Assignees   []byte         `db:"assignees"`
	Tags        []byte         `db:"tags"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	query := selectProjectsQuery
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if filter.ClientID != nil {
		clauses = append(clauses, "client_id = ?")
		args = append(args, *filter.ClientID)
	}
	if filter.Status != nil {
		clauses = append(clauses, "status = ?")
		args = append(args, string(*filter.Status))
	}

	if len(clauses) > 0 {
		query += "WHERE " + strings.Join(clauses, " AND ") + "\n"
	}
	query += "ORDER BY id;"

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		project, err := mapProjectRow(row)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id uint64) (domain.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row, selectProjectsQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}
	return mapProjectRow(row)
}

// Create inserts the project and its application links in one transaction so
// a bad link never leaves a half-created project behind.
func (r *ProjectRepository) Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	assignees, err := encodeStringList(input.Assignees)
	if err != nil {
		return domain.Project{}, err
	}
	tags, err := encodeStringList(input.Tags)
	if err != nil {
		return domain.Project{}, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Project{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, insertProjectQuery,
		input.Name,
		input.Description,
		input.ClientID,
		input.Color,
		string(input.Status),
		input.StartDate,
		input.EndDate,
		assignees,
		tags,
	)
	if err != nil {
		return domain.Project{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Project{}, err
	}

	for _, applicationID := range input.ApplicationIDs {
		if _, err := tx.ExecContext(ctx, linkApplicationQuery, id, applicationID); err != nil {
			return domain.Project{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Project{}, err
	}

	return r.Get(ctx, uint64(id))
}

func (r *ProjectRepository) Update(ctx context.Context, id uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 9)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.ClientIDSet {
		sets = append(sets, "client_id = ?")
		args = append(args, input.ClientID)
	}
	if input.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *input.Color)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.StartDateSet {
		sets = append(sets, "start_date = ?")
		args = append(args, input.StartDate)
	}
	if input.EndDateSet {
		sets = append(sets, "end_date = ?")
		args = append(args, input.EndDate)
	}
	if input.AssigneesSet {
		assignees, err := encodeStringList(input.Assignees)
		if err != nil {
			return domain.Project{}, err
		}
		sets = append(sets, "assignees = ?")
		args = append(args, assignees)
	}
	if input.TagsSet {
		tags, err := encodeStringList(input.Tags)
		if err != nil {
			return domain.Project{}, err
		}
		sets = append(sets, "tags = ?")
		args = append(args, tags)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE projects SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Project{}, err
		}
	}

	return r.Get(ctx, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?;", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) ListApplications(ctx context.Context, projectID uint64) ([]domain.Application, error) {
	var rows []applicationRow
	if err := r.db.SelectContext(ctx, &rows, selectProjectApplicationsQuery, projectID); err != nil {
		return nil, err
	}

	applications := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		applications = append(applications, mapApplicationRow(row))
	}
	return applications, nil
}

func (r *ProjectRepository) LinkApplication(ctx context.Context, projectID, applicationID uint64) error {
	_, err := r.db.ExecContext(ctx, linkApplicationQuery, projectID, applicationID)
	return err
}

func (r *ProjectRepository) UnlinkApplication(ctx context.Context, projectID, applicationID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM project_applications WHERE project_id = ? AND application_id = ?;",
		projectID, applicationID)
	return err
}

func mapProjectRow(row projectRow) (domain.Project, error) {
	project := domain.Project{
		ID:        row.ID,
		Name:      row.Name,
		Color:     row.Color,
		Status:    domain.ProjectStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}
	if row.ClientID.Valid {
		value := uint64(row.ClientID.Int64)
		project.ClientID = &value
	}
	if row.StartDate.Valid {
		value := row.StartDate.Time
		project.StartDate = &value
	}
	if row.EndDate.Valid {
		value := row.EndDate.Time
		project.EndDate = &value
	}

	assignees, err := decodeStringList(row.Assignees)
	if err != nil {
		return domain.Project{}, err
	}
	project.Assignees = assignees

	tags, err := decodeStringList(row.Tags)
	if err != nil {
		return domain.Project{}, err
	}
	project.Tags = tags

	return project, nil
}
