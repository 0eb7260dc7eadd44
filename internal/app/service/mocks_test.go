package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"workdeck/internal/core/domain"
)

// Hand-written repository mocks shared by the service tests in this package.

type taskRepoMock struct {
	mock.Mock
}

func (m *taskRepoMock) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepoMock) Search(ctx context.Context, query string) ([]domain.Task, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepoMock) Get(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepoMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepoMock) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepoMock) UpdateStatus(ctx context.Context, id uint64, status domain.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *taskRepoMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskRepoMock) CountByProject(ctx context.Context, projectID uint64) (int, int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Int(1), args.Error(2)
}

type projectRepoMock struct {
	mock.Mock
}

func (m *projectRepoMock) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	args := m.Called(ctx, filter)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepoMock) Get(ctx context.Context, id uint64) (domain.Project, error) {
	args := m.Called(ctx, id)

	var project domain.Project
	if value := args.Get(0); value != nil {
		project = value.(domain.Project)
	}
	return project, args.Error(1)
}

func (m *projectRepoMock) Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, input)

	var project domain.Project
	if value := args.Get(0); value != nil {
		project = value.(domain.Project)
	}
	return project, args.Error(1)
}

func (m *projectRepoMock) Update(ctx context.Context, id uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, id, input)

	var project domain.Project
	if value := args.Get(0); value != nil {
		project = value.(domain.Project)
	}
	return project, args.Error(1)
}

func (m *projectRepoMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *projectRepoMock) ListApplications(ctx context.Context, projectID uint64) ([]domain.Application, error) {
	args := m.Called(ctx, projectID)

	var applications []domain.Application
	if value := args.Get(0); value != nil {
		applications = value.([]domain.Application)
	}
	return applications, args.Error(1)
}

func (m *projectRepoMock) LinkApplication(ctx context.Context, projectID, applicationID uint64) error {
	args := m.Called(ctx, projectID, applicationID)
	return args.Error(0)
}

func (m *projectRepoMock) UnlinkApplication(ctx context.Context, projectID, applicationID uint64) error {
	args := m.Called(ctx, projectID, applicationID)
	return args.Error(0)
}

type clientRepoMock struct {
	mock.Mock
}

func (m *clientRepoMock) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	args := m.Called(ctx, filter)

	var clients []domain.Client
	if value := args.Get(0); value != nil {
		clients = value.([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *clientRepoMock) Get(ctx context.Context, id uint64) (domain.Client, error) {
	args := m.Called(ctx, id)

	var client domain.Client
	if value := args.Get(0); value != nil {
		client = value.(domain.Client)
	}
	return client, args.Error(1)
}

func (m *clientRepoMock) Create(ctx context.Context, input domain.CreateClientInput) (domain.Client, error) {
	args := m.Called(ctx, input)

	var client domain.Client
	if value := args.Get(0); value != nil {
		client = value.(domain.Client)
	}
	return client, args.Error(1)
}

func (m *clientRepoMock) Update(ctx context.Context, id uint64, input domain.UpdateClientInput) (domain.Client, error) {
	args := m.Called(ctx, id, input)

	var client domain.Client
	if value := args.Get(0); value != nil {
		client = value.(domain.Client)
	}
	return client, args.Error(1)
}

func (m *clientRepoMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepoMock) Get(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) GetByName(ctx context.Context, name string) (domain.User, error) {
	args := m.Called(ctx, name)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) Create(ctx context.Context, input domain.CreateUserInput, passwordHash *string) (domain.User, error) {
	args := m.Called(ctx, input, passwordHash)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) Update(ctx context.Context, id uint64, input domain.UpdateUserInput, passwordHash *string) (domain.User, error) {
	args := m.Called(ctx, id, input, passwordHash)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type applicationRepoMock struct {
	mock.Mock
}

func (m *applicationRepoMock) List(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)

	var applications []domain.Application
	if value := args.Get(0); value != nil {
		applications = value.([]domain.Application)
	}
	return applications, args.Error(1)
}

func (m *applicationRepoMock) Get(ctx context.Context, id uint64) (domain.Application, error) {
	args := m.Called(ctx, id)

	var application domain.Application
	if value := args.Get(0); value != nil {
		application = value.(domain.Application)
	}
	return application, args.Error(1)
}

func (m *applicationRepoMock) Create(ctx context.Context, input domain.CreateApplicationInput) (domain.Application, error) {
	args := m.Called(ctx, input)

	var application domain.Application
	if value := args.Get(0); value != nil {
		application = value.(domain.Application)
	}
	return application, args.Error(1)
}

func (m *applicationRepoMock) Update(ctx context.Context, id uint64, input domain.UpdateApplicationInput) (domain.Application, error) {
	args := m.Called(ctx, id, input)

	var application domain.Application
	if value := args.Get(0); value != nil {
		application = value.(domain.Application)
	}
	return application, args.Error(1)
}

func (m *applicationRepoMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type activityRepoMock struct {
	mock.Mock
}

func (m *activityRepoMock) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	args := m.Called(ctx, filter)

	var activities []domain.Activity
	if value := args.Get(0); value != nil {
		activities = value.([]domain.Activity)
	}
	return activities, args.Error(1)
}

func (m *activityRepoMock) Create(ctx context.Context, input domain.CreateActivityInput) (domain.Activity, error) {
	args := m.Called(ctx, input)

	var activity domain.Activity
	if value := args.Get(0); value != nil {
		activity = value.(domain.Activity)
	}
	return activity, args.Error(1)
}

type notificationRepoMock struct {
	mock.Mock
}

func (m *notificationRepoMock) ListByUser(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)

	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notificationRepoMock) Create(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error) {
	args := m.Called(ctx, input)

	var notification domain.Notification
	if value := args.Get(0); value != nil {
		notification = value.(domain.Notification)
	}
	return notification, args.Error(1)
}

func (m *notificationRepoMock) MarkRead(ctx context.Context, id, userID uint64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *notificationRepoMock) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type permissionRepoMock struct {
	mock.Mock
}

func (m *permissionRepoMock) GetClient(ctx context.Context, userID, clientID uint64) (domain.PermissionSet, bool, error) {
	args := m.Called(ctx, userID, clientID)

	var set domain.PermissionSet
	if value := args.Get(0); value != nil {
		set = value.(domain.PermissionSet)
	}
	return set, args.Bool(1), args.Error(2)
}

func (m *permissionRepoMock) GetProject(ctx context.Context, userID, projectID uint64) (domain.PermissionSet, bool, error) {
	args := m.Called(ctx, userID, projectID)

	var set domain.PermissionSet
	if value := args.Get(0); value != nil {
		set = value.(domain.PermissionSet)
	}
	return set, args.Bool(1), args.Error(2)
}

func (m *permissionRepoMock) UpsertClient(ctx context.Context, userID, clientID uint64, perms domain.PermissionSet) (domain.UserClientPermission, error) {
	args := m.Called(ctx, userID, clientID, perms)

	var row domain.UserClientPermission
	if value := args.Get(0); value != nil {
		row = value.(domain.UserClientPermission)
	}
	return row, args.Error(1)
}

func (m *permissionRepoMock) UpsertProject(ctx context.Context, userID, projectID uint64, perms domain.PermissionSet) (domain.UserProjectPermission, error) {
	args := m.Called(ctx, userID, projectID, perms)

	var row domain.UserProjectPermission
	if value := args.Get(0); value != nil {
		row = value.(domain.UserProjectPermission)
	}
	return row, args.Error(1)
}

func (m *permissionRepoMock) ListByUser(ctx context.Context, userID uint64) (domain.UserPermissions, error) {
	args := m.Called(ctx, userID)

	var perms domain.UserPermissions
	if value := args.Get(0); value != nil {
		perms = value.(domain.UserPermissions)
	}
	return perms, args.Error(1)
}

type permissionServiceMock struct {
	mock.Mock
}

func (m *permissionServiceMock) CanPerform(ctx context.Context, principal domain.Principal, resource domain.ResourceType, resourceID uint64, action domain.Action) (bool, error) {
	args := m.Called(ctx, principal, resource, resourceID, action)
	return args.Bool(0), args.Error(1)
}

func (m *permissionServiceMock) ListUserPermissions(ctx context.Context, principal domain.Principal, userID uint64) (domain.UserPermissions, error) {
	args := m.Called(ctx, principal, userID)

	var perms domain.UserPermissions
	if value := args.Get(0); value != nil {
		perms = value.(domain.UserPermissions)
	}
	return perms, args.Error(1)
}

func (m *permissionServiceMock) AssignClientPermission(ctx context.Context, principal domain.Principal, userID, clientID uint64, perms domain.PermissionSet) (domain.UserClientPermission, error) {
	args := m.Called(ctx, principal, userID, clientID, perms)

	var row domain.UserClientPermission
	if value := args.Get(0); value != nil {
		row = value.(domain.UserClientPermission)
	}
	return row, args.Error(1)
}

func (m *permissionServiceMock) AssignProjectPermission(ctx context.Context, principal domain.Principal, userID, projectID uint64, perms domain.PermissionSet) (domain.UserProjectPermission, error) {
	args := m.Called(ctx, principal, userID, projectID, perms)

	var row domain.UserProjectPermission
	if value := args.Get(0); value != nil {
		row = value.(domain.UserProjectPermission)
	}
	return row, args.Error(1)
}

type progressCacheMock struct {
	mock.Mock
}

func (m *progressCacheMock) Get(projectID uint64) (int, bool) {
	args := m.Called(projectID)
	return args.Int(0), args.Bool(1)
}

func (m *progressCacheMock) Set(projectID uint64, progress int) {
	m.Called(projectID, progress)
}

func (m *progressCacheMock) Invalidate(projectID uint64) {
	m.Called(projectID)
}
