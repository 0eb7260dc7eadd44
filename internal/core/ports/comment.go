package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type CommentRepository interface {
	// ListByTask returns the task's comments oldest-first.
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
	Create(ctx context.Context, taskID uint64, input domain.CreateCommentInput) (domain.Comment, error)
}

type CommentService interface {
	ListComments(ctx context.Context, principal domain.Principal, taskID uint64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, principal domain.Principal, taskID uint64, input domain.CreateCommentInput) (domain.Comment, error)
}
