package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/adapter/http/handlers"
	"workdeck/internal/adapter/http/middleware"
	"workdeck/internal/core/domain"
	"workdeck/pkg/apierrors"
	"workdeck/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, principal, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, principal domain.Principal, id uint64) (domain.Task, error) {
	args := m.Called(ctx, principal, id)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, principal domain.Principal, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, principal, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, principal domain.Principal, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, principal, id, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) UpdateTaskStatus(ctx context.Context, principal domain.Principal, id uint64, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, principal, id, status)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, principal domain.Principal, id uint64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func newTaskRouter(handler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()
	authed := router.Group("/api", middleware.LanguageMiddleware(), middleware.AuthMiddleware(testTokens))
	authed.GET("/tasks", handler.ListTasks)
	authed.POST("/tasks", handler.CreateTask)
	authed.GET("/tasks/:id", handler.GetTask)
	authed.PATCH("/tasks/:id", handler.UpdateTask)
	authed.PATCH("/tasks/:id/status", handler.UpdateTaskStatus)
	authed.DELETE("/tasks/:id", handler.DeleteTask)
	return router
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	description := "ship the billing export"
	assignee := "Dana Field"
	projectID := uint64(7)
	dueDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 2, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 3, 3, 11, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, memberPrincipal, domain.TaskFilter{}).Return(
		[]domain.Task{
			{
				ID:           11,
				Title:        "Ship the export",
				Description:  &description,
				Status:       domain.TaskStatusInProgress,
				Priority:     domain.TaskPriorityHigh,
				ProjectID:    &projectID,
				Assignee:     &assignee,
				DueDate:      &dueDate,
				Progress:     40,
				Tags:         []string{"billing"},
				Dependencies: []uint64{9},
				CreatedAt:    createdAt,
				UpdatedAt:    updatedAt,
			},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	require.Equal(t, uint64(11), got[0].ID)
	require.Equal(t, "Ship the export", got[0].Title)
	require.Equal(t, "ship the billing export", *got[0].Description)
	require.Equal(t, "in_progress", got[0].Status)
	require.Equal(t, "high", got[0].Priority)
	require.Equal(t, uint64(7), *got[0].ProjectID)
	require.Equal(t, "Dana Field", *got[0].Assignee)
	require.Equal(t, "2026-04-01", *got[0].DueDate)
	require.Equal(t, 40, got[0].Progress)
	require.Equal(t, []string{"billing"}, got[0].Tags)
	require.Equal(t, []uint64{9}, got[0].Dependencies)
	require.Equal(t, "2026-03-02T10:20:30Z", got[0].CreatedAt)
	require.Equal(t, "2026-03-03T11:20:30Z", got[0].UpdatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_SearchSupersedesFilters(t *testing.T) {
	projectID := uint64(7)
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, memberPrincipal, domain.TaskFilter{
		ProjectID: &projectID,
		Query:     "billing",
	}).Return([]domain.Task{}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?project_id=7&q=billing", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_InvalidFilter(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?project_id=abc", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_MissingToken(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Authentication required.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, memberPrincipal, uint64(99)).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/99", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusNotFound, got.ErrDetails.Code)
	require.Equal(t, "Task not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_Forbidden(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, memberPrincipal, uint64(11)).
		Return(domain.Task{}, domain.ErrForbidden).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/11", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "You do not have permission to perform this action.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/invalid", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task id.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	projectID := uint64(7)
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, adminPrincipal, domain.CreateTaskInput{
		Title:     "Ship the export",
		Status:    domain.TaskStatusOpen,
		Priority:  domain.TaskPriorityHigh,
		ProjectID: &projectID,
	}).Return(domain.Task{
		ID:        11,
		Title:     "Ship the export",
		Status:    domain.TaskStatusOpen,
		Priority:  domain.TaskPriorityHigh,
		ProjectID: &projectID,
	}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	body := `{"title": "Ship the export", "priority": "high", "project_id": 7}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(adminPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(11), got.ID)
	require.Equal(t, "open", got.Status)
	require.Equal(t, "high", got.Priority)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"priority": "low"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(adminPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_ClearsDueDate(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, adminPrincipal, uint64(11), domain.UpdateTaskInput{
		DueDateSet: true,
	}).Return(domain.Task{ID: 11, Title: "Ship the export", Status: domain.TaskStatusOpen, Priority: domain.TaskPriorityHigh}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/11", strings.NewReader(`{"due_date": null}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(adminPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Nil(t, got.DueDate)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_EmptyPatch(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/11", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(adminPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTaskStatus_LegacyValue(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTaskStatus", mock.Anything, memberPrincipal, uint64(11), domain.TaskStatusClosed).
		Return(domain.Task{ID: 11, Title: "Ship the export", Status: domain.TaskStatusClosed, Priority: domain.TaskPriorityHigh}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/11/status", strings.NewReader(`{"status": "done"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "closed", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_SelfDependency(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, memberPrincipal, uint64(11), domain.UpdateTaskInput{
		Dependencies:    []uint64{11},
		DependenciesSet: true,
	}).Return(domain.Task{}, domain.NewValidationError("dependencies", "a task cannot depend on itself")).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/11", strings.NewReader(`{"dependencies": [11]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_NoContent(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, adminPrincipal, uint64(11)).Return(nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/11", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(adminPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, memberPrincipal, domain.TaskFilter{}).
		Return(nil, errors.New("db is down")).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Could not retrieve tasks.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
