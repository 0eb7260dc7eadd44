package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workdeck/internal/app/service"
	"workdeck/internal/core/domain"
)

type taskFixture struct {
	tasks         *taskRepoMock
	projects      *projectRepoMock
	applications  *applicationRepoMock
	users         *userRepoMock
	activities    *activityRepoMock
	notifications *notificationRepoMock
	permissions   *permissionServiceMock
	progress      *progressCacheMock
	svc           *service.TaskService
}

func newTaskFixture() *taskFixture {
	f := &taskFixture{
		tasks:         new(taskRepoMock),
		projects:      new(projectRepoMock),
		applications:  new(applicationRepoMock),
		users:         new(userRepoMock),
		activities:    new(activityRepoMock),
		notifications: new(notificationRepoMock),
		permissions:   new(permissionServiceMock),
		progress:      new(progressCacheMock),
	}
	f.svc = service.NewTaskService(
		f.tasks, f.projects, f.applications, f.users,
		f.activities, f.notifications, f.permissions, f.progress,
	)
	return f
}

func (f *taskFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.tasks.AssertExpectations(t)
	f.projects.AssertExpectations(t)
	f.applications.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.activities.AssertExpectations(t)
	f.notifications.AssertExpectations(t)
	f.permissions.AssertExpectations(t)
	f.progress.AssertExpectations(t)
}

func TestTaskService_ListTasks_SearchSupersedesFilters(t *testing.T) {
	f := newTaskFixture()
	projectID := uint64(7)
	f.tasks.On("Search", mock.Anything, "billing").
		Return([]domain.Task{{ID: 2, Title: "Fix billing export"}}, nil).Once()

	got, err := f.svc.ListTasks(context.Background(), memberPrincipal, domain.TaskFilter{
		ProjectID: &projectID,
		Query:     "billing",
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	// List must not have been called: the query replaces the filters.
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_RecordsActivityAndNotifies(t *testing.T) {
	f := newTaskFixture()
	projectID := uint64(7)
	assignee := "Dana Field"
	input := domain.CreateTaskInput{
		Title:     "Ship the export",
		Status:    domain.TaskStatusOpen,
		Priority:  domain.TaskPriorityHigh,
		ProjectID: &projectID,
		Assignee:  &assignee,
	}
	created := domain.Task{
		ID:        11,
		Title:     "Ship the export",
		Status:    domain.TaskStatusOpen,
		Priority:  domain.TaskPriorityHigh,
		ProjectID: &projectID,
		Assignee:  &assignee,
	}

	f.projects.On("Get", mock.Anything, projectID).
		Return(domain.Project{ID: projectID, Name: "Portal relaunch"}, nil).Once()
	f.permissions.On("CanPerform", mock.Anything, memberPrincipal, domain.ResourceProject, projectID, domain.ActionEdit).
		Return(true, nil).Once()
	f.tasks.On("Create", mock.Anything, input).Return(created, nil).Once()
	f.activities.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CreateActivityInput) bool {
		return in.Type == domain.ActivityCreated && *in.TaskID == created.ID
	})).Return(domain.Activity{ID: 1}, nil).Once()
	f.users.On("GetByName", mock.Anything, assignee).
		Return(domain.User{ID: 9, Name: assignee, IsActive: true}, nil).Once()
	f.notifications.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CreateNotificationInput) bool {
		return in.Type == domain.NotificationTaskAssigned && in.UserID == 9
	})).Return(domain.Notification{ID: 1}, nil).Once()
	f.progress.On("Invalidate", projectID).Once()

	got, err := f.svc.CreateTask(context.Background(), memberPrincipal, input)

	require.NoError(t, err)
	require.Equal(t, uint64(11), got.ID)
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_InvalidProgress(t *testing.T) {
	f := newTaskFixture()

	_, err := f.svc.CreateTask(context.Background(), adminPrincipal, domain.CreateTaskInput{
		Title:    "Broken",
		Status:   domain.TaskStatusOpen,
		Priority: domain.TaskPriorityLow,
		Progress: 150,
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "progress", validationErr.Field)
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_UnattachedNeedsMutatorRole(t *testing.T) {
	f := newTaskFixture()
	input := domain.CreateTaskInput{
		Title:    "Loose end",
		Status:   domain.TaskStatusOpen,
		Priority: domain.TaskPriorityLow,
	}

	_, err := f.svc.CreateTask(context.Background(), memberPrincipal, input)
	require.ErrorIs(t, err, domain.ErrForbidden)

	f.tasks.On("Create", mock.Anything, input).Return(domain.Task{ID: 12, Title: "Loose end"}, nil).Once()
	f.activities.On("Create", mock.Anything, mock.Anything).Return(domain.Activity{}, nil).Once()

	manager := domain.Principal{UserID: 2, Name: "Max Lead", Role: domain.RoleManager}
	got, err := f.svc.CreateTask(context.Background(), manager, input)
	require.NoError(t, err)
	require.Equal(t, uint64(12), got.ID)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTask_SelfDependencyRejected(t *testing.T) {
	f := newTaskFixture()
	f.tasks.On("Get", mock.Anything, uint64(11)).
		Return(domain.Task{ID: 11, Title: "Ship the export"}, nil).Once()

	manager := domain.Principal{UserID: 2, Name: "Max Lead", Role: domain.RoleManager}
	_, err := f.svc.UpdateTask(context.Background(), manager, 11, domain.UpdateTaskInput{
		Dependencies:    []uint64{11},
		DependenciesSet: true,
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "dependencies", validationErr.Field)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTaskStatus_CompletionSideEffects(t *testing.T) {
	f := newTaskFixture()
	projectID := uint64(7)
	assignee := "Dana Field"
	before := domain.Task{ID: 11, Title: "Ship the export", Status: domain.TaskStatusInProgress, ProjectID: &projectID, Assignee: &assignee}
	after := before
	after.Status = domain.TaskStatusClosed

	f.tasks.On("Get", mock.Anything, uint64(11)).Return(before, nil).Once()
	f.permissions.On("CanPerform", mock.Anything, memberPrincipal, domain.ResourceProject, projectID, domain.ActionEdit).
		Return(true, nil).Once()
	f.tasks.On("UpdateStatus", mock.Anything, uint64(11), domain.TaskStatusClosed).Return(nil).Once()
	f.tasks.On("Get", mock.Anything, uint64(11)).Return(after, nil).Once()
	f.activities.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CreateActivityInput) bool {
		return in.Type == domain.ActivityUpdated
	})).Return(domain.Activity{}, nil).Once()
	f.activities.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CreateActivityInput) bool {
		return in.Type == domain.ActivityCompleted
	})).Return(domain.Activity{}, nil).Once()
	f.users.On("GetByName", mock.Anything, assignee).
		Return(domain.User{ID: 9, Name: assignee, IsActive: true}, nil).Once()
	f.notifications.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CreateNotificationInput) bool {
		return in.Type == domain.NotificationTaskCompleted && in.UserID == 9
	})).Return(domain.Notification{}, nil).Once()
	f.progress.On("Invalidate", projectID).Once()

	got, err := f.svc.UpdateTaskStatus(context.Background(), memberPrincipal, 11, domain.TaskStatusClosed)

	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusClosed, got.Status)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTaskStatus_UnknownStatus(t *testing.T) {
	f := newTaskFixture()

	_, err := f.svc.UpdateTaskStatus(context.Background(), adminPrincipal, 11, domain.TaskStatus("archived"))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "status", validationErr.Field)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTaskStatus_ReclosingDoesNotRenotify(t *testing.T) {
	f := newTaskFixture()
	projectID := uint64(7)
	closed := domain.Task{ID: 11, Title: "Ship the export", Status: domain.TaskStatusClosed, ProjectID: &projectID}

	f.tasks.On("Get", mock.Anything, uint64(11)).Return(closed, nil).Twice()
	f.permissions.On("CanPerform", mock.Anything, memberPrincipal, domain.ResourceProject, projectID, domain.ActionEdit).
		Return(true, nil).Once()
	f.tasks.On("UpdateStatus", mock.Anything, uint64(11), domain.TaskStatusClosed).Return(nil).Once()
	f.activities.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CreateActivityInput) bool {
		return in.Type == domain.ActivityUpdated
	})).Return(domain.Activity{}, nil).Once()
	f.progress.On("Invalidate", projectID).Once()

	_, err := f.svc.UpdateTaskStatus(context.Background(), memberPrincipal, 11, domain.TaskStatusClosed)

	require.NoError(t, err)
	// Already closed before, so no completion activity and no notification.
	f.assertExpectations(t)
}

func TestTaskService_GetTask_DeniedByProject(t *testing.T) {
	f := newTaskFixture()
	projectID := uint64(7)
	f.tasks.On("Get", mock.Anything, uint64(11)).
		Return(domain.Task{ID: 11, ProjectID: &projectID}, nil).Once()
	f.permissions.On("CanPerform", mock.Anything, memberPrincipal, domain.ResourceProject, projectID, domain.ActionView).
		Return(false, nil).Once()

	_, err := f.svc.GetTask(context.Background(), memberPrincipal, 11)

	require.ErrorIs(t, err, domain.ErrForbidden)
	f.assertExpectations(t)
}

func TestTaskService_DeleteTask_InvalidatesProgress(t *testing.T) {
	f := newTaskFixture()
	projectID := uint64(7)
	f.tasks.On("Get", mock.Anything, uint64(11)).
		Return(domain.Task{ID: 11, ProjectID: &projectID}, nil).Once()
	f.permissions.On("CanPerform", mock.Anything, adminPrincipal, domain.ResourceProject, projectID, domain.ActionDelete).
		Return(true, nil).Once()
	f.tasks.On("Delete", mock.Anything, uint64(11)).Return(nil).Once()
	f.progress.On("Invalidate", projectID).Once()

	err := f.svc.DeleteTask(context.Background(), adminPrincipal, 11)

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_SkipsInactiveAssignee(t *testing.T) {
	f := newTaskFixture()
	assignee := "Gone Person"
	input := domain.CreateTaskInput{
		Title:    "Handover",
		Status:   domain.TaskStatusOpen,
		Priority: domain.TaskPriorityMedium,
		Assignee: &assignee,
	}
	f.tasks.On("Create", mock.Anything, input).
		Return(domain.Task{ID: 13, Title: "Handover", Assignee: &assignee}, nil).Once()
	f.activities.On("Create", mock.Anything, mock.Anything).Return(domain.Activity{}, nil).Once()
	f.users.On("GetByName", mock.Anything, assignee).
		Return(domain.User{ID: 4, Name: assignee, IsActive: false}, nil).Once()

	_, err := f.svc.CreateTask(context.Background(), adminPrincipal, input)

	require.NoError(t, err)
	// Inactive assignees receive no notification.
	f.assertExpectations(t)
}
