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

const selectCommentsQuery = `
SELECT id, task_id, content, author, created_at
FROM comments
`

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	Content   string    `db:"content"`
	Author    string    `db:"author"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByTask returns the conversation oldest-first.
func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, selectCommentsQuery+"WHERE task_id = ? ORDER BY created_at, id;", taskID); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRow(row))
	}
	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, taskID uint64, input domain.CreateCommentInput) (domain.Comment, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (task_id, content, author) VALUES (?, ?, ?);",
		taskID, input.Content, input.Author)
	if err != nil {
		return domain.Comment{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}

	var row commentRow
	err = r.db.GetContext(ctx, &row, selectCommentsQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}
	return mapCommentRow(row), nil
}

func mapCommentRow(row commentRow) domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Content:   row.Content,
		Author:    row.Author,
		CreatedAt: row.CreatedAt,
	}
}
