package service

import (
	"context"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type TimeEntryService struct {
	entries     ports.TimeEntryRepository
	tasks       ports.TaskRepository
	permissions ports.PermissionService
}

func NewTimeEntryService(entries ports.TimeEntryRepository, tasks ports.TaskRepository, permissions ports.PermissionService) *TimeEntryService {
	return &TimeEntryService{entries: entries, tasks: tasks, permissions: permissions}
}

var _ ports.TimeEntryService = (*TimeEntryService)(nil)

func (s *TimeEntryService) ListTimeEntries(ctx context.Context, principal domain.Principal, taskID uint64) ([]domain.TimeEntry, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, principal, task); err != nil {
		return nil, err
	}
	return s.entries.ListByTask(ctx, taskID)
}

func (s *TimeEntryService) CreateTimeEntry(ctx context.Context, principal domain.Principal, taskID uint64, input domain.CreateTimeEntryInput) (domain.TimeEntry, error) {
	if input.Minutes <= 0 {
		return domain.TimeEntry{}, domain.NewValidationError("minutes", "must be greater than zero")
	}
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	if err := s.authorizeView(ctx, principal, task); err != nil {
		return domain.TimeEntry{}, err
	}
	return s.entries.Create(ctx, taskID, principal.UserID, input)
}

// DeleteTimeEntry lets the entry's owner or an admin remove it.
func (s *TimeEntryService) DeleteTimeEntry(ctx context.Context, principal domain.Principal, id uint64) error {
	entry, err := s.entries.Get(ctx, id)
	if err != nil {
		return err
	}
	if !principal.IsAdmin() && entry.UserID != principal.UserID {
		return domain.ErrForbidden
	}
	return s.entries.Delete(ctx, id)
}

func (s *TimeEntryService) authorizeView(ctx context.Context, principal domain.Principal, task domain.Task) error {
	if task.ProjectID == nil {
		return nil
	}
	allowed, err := s.permissions.CanPerform(ctx, principal, domain.ResourceProject, *task.ProjectID, domain.ActionView)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}
	return nil
}
