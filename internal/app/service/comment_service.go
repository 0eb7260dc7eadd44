package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

type CommentService struct {
	comments      ports.CommentRepository
	tasks         ports.TaskRepository
	users         ports.UserRepository
	activities    ports.ActivityRepository
	notifications ports.NotificationRepository
	permissions   ports.PermissionService
}

func NewCommentService(
	comments ports.CommentRepository,
	tasks ports.TaskRepository,
	users ports.UserRepository,
	activities ports.ActivityRepository,
	notifications ports.NotificationRepository,
	permissions ports.PermissionService,
) *CommentService {
	return &CommentService{
		comments:      comments,
		tasks:         tasks,
		users:         users,
		activities:    activities,
		notifications: notifications,
		permissions:   permissions,
	}
}

var _ ports.CommentService = (*CommentService)(nil)

func (s *CommentService) ListComments(ctx context.Context, principal domain.Principal, taskID uint64) ([]domain.Comment, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, principal, task); err != nil {
		return nil, err
	}
	return s.comments.ListByTask(ctx, taskID)
}

// CreateComment requires view access only: whoever can see a task may
// discuss it.
func (s *CommentService) CreateComment(ctx context.Context, principal domain.Principal, taskID uint64, input domain.CreateCommentInput) (domain.Comment, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := s.authorizeView(ctx, principal, task); err != nil {
		return domain.Comment{}, err
	}

	input.Author = principal.Name
	comment, err := s.comments.Create(ctx, taskID, input)
	if err != nil {
		return domain.Comment{}, err
	}

	if _, err := s.activities.Create(ctx, domain.CreateActivityInput{
		Type:        domain.ActivityCommented,
		Description: fmt.Sprintf("commented on task %q", task.Title),
		TaskID:      &task.ID,
		ProjectID:   task.ProjectID,
		User:        principal.Name,
	}); err != nil {
		zap.L().Warn("failed to record comment activity", zap.Error(err))
	}
	s.notifyTaskAssignee(ctx, task, principal)

	return comment, nil
}

func (s *CommentService) authorizeView(ctx context.Context, principal domain.Principal, task domain.Task) error {
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

func (s *CommentService) notifyTaskAssignee(ctx context.Context, task domain.Task, principal domain.Principal) {
	if task.Assignee == nil || *task.Assignee == principal.Name {
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
		Title:     "New comment",
		Message:   fmt.Sprintf("%s commented on task %q", principal.Name, task.Title),
		Type:      domain.NotificationCommentAdded,
		TaskID:    &task.ID,
		ProjectID: task.ProjectID,
	}); err != nil {
		zap.L().Warn("failed to create comment notification", zap.Uint64("user_id", user.ID), zap.Error(err))
	}
}
