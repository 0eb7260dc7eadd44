package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type TimeEntryRepository interface {
	ListByTask(ctx context.Context, taskID uint64) ([]domain.TimeEntry, error)
	Create(ctx context.Context, taskID, userID uint64, input domain.CreateTimeEntryInput) (domain.TimeEntry, error)
	Get(ctx context.Context, id uint64) (domain.TimeEntry, error)
	Delete(ctx context.Context, id uint64) error
}

type TimeEntryService interface {
	ListTimeEntries(ctx context.Context, principal domain.Principal, taskID uint64) ([]domain.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, principal domain.Principal, taskID uint64, input domain.CreateTimeEntryInput) (domain.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, principal domain.Principal, id uint64) error
}
