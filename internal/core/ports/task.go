package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	Search(ctx context.Context, query string) ([]domain.Task, error)
	Get(ctx context.Context, id uint64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.TaskStatus) error
	Delete(ctx context.Context, id uint64) error
	// CountByProject returns the total and closed task counts used by the
	// project progress aggregate.
	CountByProject(ctx context.Context, projectID uint64) (total, closed int, err error)
}

type TaskService interface {
	ListTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, principal domain.Principal, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, principal domain.Principal, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, principal domain.Principal, id uint64, status domain.TaskStatus) (domain.Task, error)
	DeleteTask(ctx context.Context, principal domain.Principal, id uint64) error
}
