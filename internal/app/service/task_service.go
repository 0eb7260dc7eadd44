package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type TaskService struct {
	tasks         ports.TaskRepository
	projects      ports.ProjectRepository
	applications  ports.ApplicationRepository
	users         ports.UserRepository
	activities    ports.ActivityRepository
	notifications ports.NotificationRepository
	permissions   ports.PermissionService
	progress      ports.ProgressCache
}

func NewTaskService(
	tasks ports.TaskRepository,
	projects ports.ProjectRepository,
	applications ports.ApplicationRepository,
	users ports.UserRepository,
	activities ports.ActivityRepository,
	notifications ports.NotificationRepository,
	permissions ports.PermissionService,
	progress ports.ProgressCache,
) *TaskService {
	return &TaskService{
		tasks:         tasks,
		projects:      projects,
		applications:  applications,
		users:         users,
		activities:    activities,
		notifications: notifications,
		permissions:   permissions,
		progress:      progress,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) ([]domain.Task, error) {
	// A free-text query supersedes the structured filters entirely.
	if filter.Query != "" {
		return s.tasks.Search(ctx, filter.Query)
	}
	return s.tasks.List(ctx, filter)
}

func (s *TaskService) GetTask(ctx context.Context, principal domain.Principal, id uint64) (domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.authorizeTask(ctx, principal, task, domain.ActionView); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, principal domain.Principal, input domain.CreateTaskInput) (domain.Task, error) {
	if err := validateProgress(input.Progress); err != nil {
		return domain.Task{}, err
	}
	if !input.Status.Valid() {
		return domain.Task{}, domain.NewValidationError("status", "unknown status")
	}
	if !input.Priority.Valid() {
		return domain.Task{}, domain.NewValidationError("priority", "unknown priority")
	}

	if input.ProjectID != nil {
		if _, err := s.projects.Get(ctx, *input.ProjectID); err != nil {
			return domain.Task{}, err
		}
		if err := s.authorizeProject(ctx, principal, *input.ProjectID, domain.ActionEdit); err != nil {
			return domain.Task{}, err
		}
	} else if err := requireMutatorRole(principal); err != nil {
		return domain.Task{}, err
	}
	if input.ApplicationID != nil {
		if _, err := s.applications.Get(ctx, *input.ApplicationID); err != nil {
			return domain.Task{}, err
		}
	}

	task, err := s.tasks.Create(ctx, input)
	if err != nil {
		return domain.Task{}, err
	}

	s.recordActivity(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityCreated,
		Description: fmt.Sprintf("created task %q", task.Title),
		TaskID:      &task.ID,
		ProjectID:   task.ProjectID,
		User:        principal.Name,
		Metadata:    taskMetadata(task),
	})
	if task.Assignee != nil {
		s.notifyAssignee(ctx, task, domain.NotificationTaskAssigned,
			"New task assigned",
			fmt.Sprintf("%s assigned you task %q", principal.Name, task.Title))
	}
	s.invalidateProgress(task.ProjectID)

	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	existing, err := s.tasks.Get(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.authorizeTask(ctx, principal, existing, domain.ActionEdit); err != nil {
		return domain.Task{}, err
	}

	if input.Progress != nil {
		if err := validateProgress(*input.Progress); err != nil {
			return domain.Task{}, err
		}
	}
	if input.Status != nil && !input.Status.Valid() {
		return domain.Task{}, domain.NewValidationError("status", "unknown status")
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return domain.Task{}, domain.NewValidationError("priority", "unknown priority")
	}
	for _, dep := range input.Dependencies {
		if dep == id {
			return domain.Task{}, domain.NewValidationError("dependencies", "a task cannot depend on itself")
		}
	}

	// Moving the task onto another project needs edit rights there too.
	if input.ProjectIDSet && input.ProjectID != nil {
		if _, err := s.projects.Get(ctx, *input.ProjectID); err != nil {
			return domain.Task{}, err
		}
		if err := s.authorizeProject(ctx, principal, *input.ProjectID, domain.ActionEdit); err != nil {
			return domain.Task{}, err
		}
	}
	if input.ApplicationIDSet && input.ApplicationID != nil {
		if _, err := s.applications.Get(ctx, *input.ApplicationID); err != nil {
			return domain.Task{}, err
		}
	}

	updated, err := s.tasks.Update(ctx, id, input)
	if err != nil {
		return domain.Task{}, err
	}

	s.recordTaskChanges(ctx, principal, existing, updated)
	s.invalidateProgress(existing.ProjectID)
	s.invalidateProgress(updated.ProjectID)

	return updated, nil
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, principal domain.Principal, id uint64, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, domain.NewValidationError("status", "unknown status")
	}
	existing, err := s.tasks.Get(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.authorizeTask(ctx, principal, existing, domain.ActionEdit); err != nil {
		return domain.Task{}, err
	}

	// Transitions are advisory: any status may move to any other, so only
	// enum membership is enforced above.
	if err := s.tasks.UpdateStatus(ctx, id, status); err != nil {
		return domain.Task{}, err
	}
	updated, err := s.tasks.Get(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	s.recordActivity(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityUpdated,
		Description: fmt.Sprintf("moved task %q to %s", updated.Title, updated.Status),
		TaskID:      &updated.ID,
		ProjectID:   updated.ProjectID,
		User:        principal.Name,
		Metadata:    statusMetadata(existing.Status, updated.Status),
	})
	if updated.Closed() && !existing.Closed() {
		s.recordCompletion(ctx, principal, updated)
	}
	s.invalidateProgress(updated.ProjectID)

	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, principal domain.Principal, id uint64) error {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeTask(ctx, principal, task, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateProgress(task.ProjectID)
	return nil
}

// recordTaskChanges emits the audit trail for an update: one "updated"
// activity always, plus the specific assigned/deadline_changed/completed
// records and their notifications when those fields moved.
func (s *TaskService) recordTaskChanges(ctx context.Context, principal domain.Principal, before, after domain.Task) {
	s.recordActivity(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityUpdated,
		Description: fmt.Sprintf("updated task %q", after.Title),
		TaskID:      &after.ID,
		ProjectID:   after.ProjectID,
		User:        principal.Name,
		Metadata:    taskMetadata(after),
	})

	if assigneeChanged(before.Assignee, after.Assignee) && after.Assignee != nil {
		s.recordActivity(ctx, domain.CreateActivityInput{
			Type:        domain.ActivityAssigned,
			Description: fmt.Sprintf("assigned task %q to %s", after.Title, *after.Assignee),
			TaskID:      &after.ID,
			ProjectID:   after.ProjectID,
			User:        principal.Name,
		})
		s.notifyAssignee(ctx, after, domain.NotificationTaskAssigned,
			"New task assigned",
			fmt.Sprintf("%s assigned you task %q", principal.Name, after.Title))
	}
	if dueDateChanged(before.DueDate, after.DueDate) {
		s.recordActivity(ctx, domain.CreateActivityInput{
			Type:        domain.ActivityDeadlineChanged,
			Description: fmt.Sprintf("changed the deadline of task %q", after.Title),
			TaskID:      &after.ID,
			ProjectID:   after.ProjectID,
			User:        principal.Name,
		})
	}
	if after.Closed() && !before.Closed() {
		s.recordCompletion(ctx, principal, after)
	}
}

func (s *TaskService) recordCompletion(ctx context.Context, principal domain.Principal, task domain.Task) {
	s.recordActivity(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityCompleted,
		Description: fmt.Sprintf("completed task %q", task.Title),
		TaskID:      &task.ID,
		ProjectID:   task.ProjectID,
		User:        principal.Name,
	})
	s.notifyAssignee(ctx, task, domain.NotificationTaskCompleted,
		"Task completed",
		fmt.Sprintf("Task %q was closed by %s", task.Title, principal.Name))
}

// authorizeTask gates access through the owning project when there is one.
// Unattached tasks fall back to role gating: anyone signed in may view,
// admins and managers may mutate.
func (s *TaskService) authorizeTask(ctx context.Context, principal domain.Principal, task domain.Task, action domain.Action) error {
	if task.ProjectID != nil {
		return s.authorizeProject(ctx, principal, *task.ProjectID, action)
	}
	if action == domain.ActionView {
		return nil
	}
	return requireMutatorRole(principal)
}

func (s *TaskService) authorizeProject(ctx context.Context, principal domain.Principal, projectID uint64, action domain.Action) error {
	allowed, err := s.permissions.CanPerform(ctx, principal, domain.ResourceProject, projectID, action)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}
	return nil
}

// notifyAssignee fans a notification out to the user the assignee text
// resolves to. Assignees are free text, so unresolvable names are skipped;
// a failed insert is logged, never surfaced, because notifications are a
// side effect of an already committed mutation.
func (s *TaskService) notifyAssignee(ctx context.Context, task domain.Task, kind domain.NotificationType, title, message string) {
	if task.Assignee == nil {
		return
	}
	user, err := s.users.GetByName(ctx, *task.Assignee)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			zap.L().Warn("failed to resolve assignee", zap.String("assignee", *task.Assignee), zap.Error(err))
		}
		return
	}
	if !user.IsActive {
		return
	}
	if _, err := s.notifications.Create(ctx, domain.CreateNotificationInput{
		UserID:    user.ID,
		Title:     title,
		Message:   message,
		Type:      kind,
		TaskID:    &task.ID,
		ProjectID: task.ProjectID,
	}); err != nil {
		zap.L().Warn("failed to create notification", zap.Uint64("user_id", user.ID), zap.Error(err))
	}
}

func (s *TaskService) recordActivity(ctx context.Context, input domain.CreateActivityInput) {
	if _, err := s.activities.Create(ctx, input); err != nil {
		zap.L().Warn("failed to record activity", zap.String("type", string(input.Type)), zap.Error(err))
	}
}

func (s *TaskService) invalidateProgress(projectID *uint64) {
	if projectID != nil {
		s.progress.Invalidate(*projectID)
	}
}

func validateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return domain.NewValidationError("progress", "must be between 0 and 100")
	}
	return nil
}

func requireMutatorRole(principal domain.Principal) error {
	if principal.Role == domain.RoleAdmin || principal.Role == domain.RoleManager {
		return nil
	}
	return domain.ErrForbidden
}

func assigneeChanged(before, after *string) bool {
	switch {
	case before == nil && after == nil:
		return false
	case before == nil || after == nil:
		return true
	default:
		return *before != *after
	}
}

func dueDateChanged(before, after *time.Time) bool {
	switch {
	case before == nil && after == nil:
		return false
	case before == nil || after == nil:
		return true
	default:
		return !before.Equal(*after)
	}
}

func taskMetadata(task domain.Task) json.RawMessage {
	metadata, _ := json.Marshal(map[string]any{
		"status":   task.Status,
		"priority": task.Priority,
		"progress": task.Progress,
	})
	return metadata
}

func statusMetadata(from, to domain.TaskStatus) json.RawMessage {
	metadata, _ := json.Marshal(map[string]any{"from": from, "to": to})
	return metadata
}
