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

const selectTasksQuery = `
SELECT
  id, title, description, content, status, priority, project_id,
  application_id, assignee, due_date, progress, tags, dependencies,
  created_at, updated_at
FROM tasks
`

const insertTaskQuery = `
INSERT INTO tasks
  (title, description, content, status, priority, project_id, application_id,
   assignee, due_date, progress, tags, dependencies)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const countTasksByProjectQuery = `
SELECT
  COUNT(*)                                AS total,
  COALESCE(SUM(status = 'closed'), 0)     AS closed
FROM tasks
WHERE project_id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID            uint64         `db:"id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	Content       sql.NullString `db:"content"`
	Status        string         `db:"status"`
	Priority      string         `db:"priority"`
	ProjectID     sql.NullInt64  `db:"project_id"`
	ApplicationID sql.NullInt64  `db:"application_id"`
	Assignee      sql.NullString `db:"assignee"`
	DueDate       sql.NullTime   `db:"due_date"`
	Progress      int            `db:"progress"`
	Tags          []byte         `db:"tags"`
	Dependencies  []byte         `db:"dependencies"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := selectTasksQuery
	clauses := make([]string, 0, 5)
	args := make([]any, 0, 5)

	if filter.ProjectID != nil {
		clauses = append(clauses, "project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.ApplicationID != nil {
		clauses = append(clauses, "application_id = ?")
		args = append(args, *filter.ApplicationID)
	}
	if filter.Status != nil {
		clauses = append(clauses, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		clauses = append(clauses, "priority = ?")
		args = append(args, string(*filter.Priority))
	}
	if filter.Assignee != nil {
		clauses = append(clauses, "assignee = ?")
		args = append(args, *filter.Assignee)
	}

	if len(clauses) > 0 {
		query += "WHERE " + strings.Join(clauses, " AND ") + "\n"
	}
	query += "ORDER BY id;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return mapTaskRows(rows)
}

func (r *TaskRepository) Search(ctx context.Context, query string) ([]domain.Task, error) {
	pattern := "%" + query + "%"
	searchQuery := selectTasksQuery +
		"WHERE title LIKE ? OR description LIKE ? OR content LIKE ? OR assignee LIKE ? OR tags LIKE ?\n" +
		"ORDER BY id;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, searchQuery, pattern, pattern, pattern, pattern, pattern); err != nil {
		return nil, err
	}
	return mapTaskRows(rows)
}

func (r *TaskRepository) Get(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTasksQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	tags, err := encodeStringList(input.Tags)
	if err != nil {
		return domain.Task{}, err
	}
	dependencies, err := encodeIDList(input.Dependencies)
	if err != nil {
		return domain.Task{}, err
	}

	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		input.Title,
		input.Description,
		input.Content,
		string(input.Status),
		string(input.Priority),
		input.ProjectID,
		input.ApplicationID,
		input.Assignee,
		input.DueDate,
		input.Progress,
		tags,
		dependencies,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.Get(ctx, uint64(id))
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 12)
	args := make([]any, 0, 12)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, input.Description)
	}
	if input.ContentSet {
		sets = append(sets, "content = ?")
		args = append(args, input.Content)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.ProjectIDSet {
		sets = append(sets, "project_id = ?")
		args = append(args, input.ProjectID)
	}
	if input.ApplicationIDSet {
		sets = append(sets, "application_id = ?")
		args = append(args, input.ApplicationID)
	}
	if input.AssigneeSet {
		sets = append(sets, "assignee = ?")
		args = append(args, input.Assignee)
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, input.DueDate)
	}
	if input.Progress != nil {
		sets = append(sets, "progress = ?")
		args = append(args, *input.Progress)
	}
	if input.TagsSet {
		tags, err := encodeStringList(input.Tags)
		if err != nil {
			return domain.Task{}, err
		}
		sets = append(sets, "tags = ?")
		args = append(args, tags)
	}
	if input.DependenciesSet {
		dependencies, err := encodeIDList(input.Dependencies)
		if err != nil {
			return domain.Task{}, err
		}
		sets = append(sets, "dependencies = ?")
		args = append(args, dependencies)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Task{}, err
		}
	}

	return r.Get(ctx, id)
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id uint64, status domain.TaskStatus) error {
	result, err := r.db.ExecContext(ctx, "UPDATE tasks SET status = ? WHERE id = ?;", string(status), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// MySQL reports zero affected rows for a no-op update too, so double
		// check the row exists before reporting not found.
		var exists int
		if err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM tasks WHERE id = ?;", id); errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTaskNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?;", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) CountByProject(ctx context.Context, projectID uint64) (int, int, error) {
	var counts struct {
		Total  int `db:"total"`
		Closed int `db:"closed"`
	}
	if err := r.db.GetContext(ctx, &counts, countTasksByProjectQuery, projectID); err != nil {
		return 0, 0, err
	}
	return counts.Total, counts.Closed, nil
}

func mapTaskRows(rows []taskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		Progress:  row.Progress,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.Content.Valid {
		value := row.Content.String
		task.Content = &value
	}
	if row.ProjectID.Valid {
		value := uint64(row.ProjectID.Int64)
		task.ProjectID = &value
	}
	if row.ApplicationID.Valid {
		value := uint64(row.ApplicationID.Int64)
		task.ApplicationID = &value
	}
	if row.Assignee.Valid {
		value := row.Assignee.String
		task.Assignee = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	tags, err := decodeStringList(row.Tags)
	if err != nil {
		return domain.Task{}, err
	}
	task.Tags = tags

	dependencies, err := decodeIDList(row.Dependencies)
	if err != nil {
		return domain.Task{}, err
	}
	task.Dependencies = dependencies

	return task, nil
}
