//go:build integration
// +build integration

package tests

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	cacheadapter "workdeck/internal/adapter/cache"
	dbadapter "workdeck/internal/adapter/db"
	httpadapter "workdeck/internal/adapter/http"
	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/adapter/http/handlers"
	"workdeck/internal/adapter/http/validation"
	appservice "workdeck/internal/app/service"
	"workdeck/internal/auth"
	"workdeck/internal/core/domain"
	"workdeck/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.RegisterCustomValidators()
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

// TasksIntegrationSuite drives the full stack against a real MySQL
// database: router, auth middleware, services and repositories wired
// exactly as in cmd/api.
type TasksIntegrationSuite struct {
	IntegrationSuiteBase

	router *gin.Engine
	tokens *auth.TokenManager

	adminID    uint64
	memberID   uint64
	adminAuth  string
	memberAuth string
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	s.adminID = s.seedUser("Ana Root", "ana@workdeck.test", "admin", "admin-pass")
	s.memberID = s.seedUser("Dana Field", "dana@workdeck.test", "member", "member-pass")

	progressCache, err := cacheadapter.NewProgressCache(64)
	s.Require().NoError(err)

	clientRepo := dbadapter.NewClientRepository(s.DB)
	projectRepo := dbadapter.NewProjectRepository(s.DB)
	applicationRepo := dbadapter.NewApplicationRepository(s.DB)
	taskRepo := dbadapter.NewTaskRepository(s.DB)
	commentRepo := dbadapter.NewCommentRepository(s.DB)
	activityRepo := dbadapter.NewActivityRepository(s.DB)
	notificationRepo := dbadapter.NewNotificationRepository(s.DB)
	timeEntryRepo := dbadapter.NewTimeEntryRepository(s.DB)
	userRepo := dbadapter.NewUserRepository(s.DB)
	permissionRepo := dbadapter.NewPermissionRepository(s.DB)
	productRepo := dbadapter.NewProductRepository(s.DB)
	subscriptionRepo := dbadapter.NewSubscriptionRepository(s.DB)

	s.tokens = auth.NewTokenManager("integration-test-key", time.Hour)
	clock := appservice.SystemClock{}

	permissionService := appservice.NewPermissionService(permissionRepo, projectRepo, clientRepo, userRepo, activityRepo)
	authService := appservice.NewAuthService(userRepo, s.tokens, clock)
	clientService := appservice.NewClientService(clientRepo, permissionService)
	projectService := appservice.NewProjectService(projectRepo, applicationRepo, clientRepo, taskRepo, activityRepo, permissionService, progressCache)
	applicationService := appservice.NewApplicationService(applicationRepo)
	taskService := appservice.NewTaskService(taskRepo, projectRepo, applicationRepo, userRepo, activityRepo, notificationRepo, permissionService, progressCache)
	commentService := appservice.NewCommentService(commentRepo, taskRepo, userRepo, activityRepo, notificationRepo, permissionService)
	timeEntryService := appservice.NewTimeEntryService(timeEntryRepo, taskRepo, permissionService)
	activityService := appservice.NewActivityService(activityRepo)
	notificationService := appservice.NewNotificationService(notificationRepo)
	userService := appservice.NewUserService(userRepo, bcrypt.MinCost)
	productService := appservice.NewProductService(productRepo)
	subscriptionService := appservice.NewSubscriptionService(subscriptionRepo)

	router := gin.New()
	httpadapter.RegisterRoutes(router, s.tokens, httpadapter.Handlers{
		Health:        handlers.NewHealthHandler(s.DB),
		Auth:          handlers.NewAuthHandler(authService),
		Clients:       handlers.NewClientHandler(clientService),
		Projects:      handlers.NewProjectHandler(projectService),
		Applications:  handlers.NewApplicationHandler(applicationService),
		Tasks:         handlers.NewTaskHandler(taskService),
		Comments:      handlers.NewCommentHandler(commentService),
		TimeEntries:   handlers.NewTimeEntryHandler(timeEntryService),
		Activities:    handlers.NewActivityHandler(activityService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Users:         handlers.NewUserHandler(userService, permissionService),
		Products:      handlers.NewProductHandler(productService, clock),
		Subscriptions: handlers.NewSubscriptionHandler(subscriptionService, clock),
	})
	s.router = router

	s.adminAuth = s.authHeader(s.adminID, "Ana Root", "ana@workdeck.test", domain.RoleAdmin)
	s.memberAuth = s.authHeader(s.memberID, "Dana Field", "dana@workdeck.test", domain.RoleMember)
}

func (s *TasksIntegrationSuite) seedUser(name, email, role, password string) uint64 {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)

	result, err := s.DB.Exec(
		"INSERT INTO users (name, email, role, password_hash, is_active) VALUES (?, ?, ?, ?, 1)",
		name, email, role, string(hash),
	)
	s.Require().NoError(err)
	id, err := result.LastInsertId()
	s.Require().NoError(err)
	return uint64(id)
}

func (s *TasksIntegrationSuite) authHeader(id uint64, name, email string, role domain.UserRole) string {
	token, err := s.tokens.Issue(domain.User{ID: id, Name: name, Email: email, Role: role}, time.Now())
	s.Require().NoError(err)
	return "Bearer " + token
}

func (s *TasksIntegrationSuite) do(method, target, body, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) createProject(name string) uint64 {
	rec := s.do(http.MethodPost, "/api/projects", fmt.Sprintf(`{"name": %q}`, name), s.adminAuth)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.ProjectItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got.ID
}

func (s *TasksIntegrationSuite) createTask(body string) dto.TaskItem {
	rec := s.do(http.MethodPost, "/api/tasks", body, s.adminAuth)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func (s *TasksIntegrationSuite) fetchProject(id uint64, authorization string) (dto.ProjectItem, int) {
	rec := s.do(http.MethodGet, fmt.Sprintf("/api/projects/%d", id), "", authorization)
	var got dto.ProjectItem
	if rec.Code == http.StatusOK {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	}
	return got, rec.Code
}

func (s *TasksIntegrationSuite) TestLogin_IssuesUsableToken() {
	rec := s.do(http.MethodPost, "/api/auth/login", `{"email": "ana@workdeck.test", "password": "admin-pass"}`, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.LoginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().NotEmpty(got.Token)
	s.Require().Equal("admin", got.User.Role)
	s.Require().NotContains(rec.Body.String(), "password")

	rec = s.do(http.MethodGet, "/api/auth/me", "", "Bearer "+got.Token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var me dto.UserItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &me))
	s.Require().Equal("ana@workdeck.test", me.Email)
	s.Require().True(me.CanLogin)
}

func (s *TasksIntegrationSuite) TestLogin_RejectsWrongPassword() {
	rec := s.do(http.MethodPost, "/api/auth/login", `{"email": "ana@workdeck.test", "password": "nope"}`, "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	s.Require().Contains(rec.Body.String(), "Invalid email or password.")
}

func (s *TasksIntegrationSuite) TestCreateTask_NormalizesLegacyStatus() {
	got := s.createTask(`{"title": "Wire the webhook", "status": "todo", "priority": "high"}`)
	s.Require().Equal("open", got.Status)

	var stored string
	s.Require().NoError(s.DB.Get(&stored, "SELECT status FROM tasks WHERE id = ?", got.ID))
	s.Require().Equal("open", stored)
}

func (s *TasksIntegrationSuite) TestProjectProgress_TracksClosedTasks() {
	projectID := s.createProject("Portal relaunch")

	project, code := s.fetchProject(projectID, s.adminAuth)
	s.Require().Equal(http.StatusOK, code)
	s.Require().Equal(0, project.Progress)

	first := s.createTask(fmt.Sprintf(`{"title": "Design schema", "project_id": %d}`, projectID))
	s.createTask(fmt.Sprintf(`{"title": "Build importer", "project_id": %d}`, projectID))

	rec := s.do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", first.ID), `{"status": "done"}`, s.adminAuth)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal("closed", updated.Status)

	project, code = s.fetchProject(projectID, s.adminAuth)
	s.Require().Equal(http.StatusOK, code)
	s.Require().Equal(50, project.Progress)
}

func (s *TasksIntegrationSuite) TestDeleteProject_DetachesTasksAndLinks() {
	projectID := s.createProject("Portal relaunch")

	result, err := s.DB.Exec("INSERT INTO applications (name, type) VALUES ('Customer portal', 'Web')")
	s.Require().NoError(err)
	applicationID, err := result.LastInsertId()
	s.Require().NoError(err)

	linkTarget := fmt.Sprintf("/api/projects/%d/applications/%d", projectID, applicationID)
	rec := s.do(http.MethodPost, linkTarget, "", s.adminAuth)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	// Linking twice is a no-op and leaves a single join row.
	rec = s.do(http.MethodPost, linkTarget, "", s.adminAuth)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	var links int
	s.Require().NoError(s.DB.Get(&links, "SELECT COUNT(*) FROM project_applications WHERE project_id = ?", projectID))
	s.Require().Equal(1, links)

	task := s.createTask(fmt.Sprintf(`{"title": "Design schema", "project_id": %d}`, projectID))

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/projects/%d", projectID), "", s.adminAuth)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	s.Require().NoError(s.DB.Get(&links, "SELECT COUNT(*) FROM project_applications WHERE project_id = ?", projectID))
	s.Require().Equal(0, links)

	var detached sql.NullInt64
	s.Require().NoError(s.DB.Get(&detached, "SELECT project_id FROM tasks WHERE id = ?", task.ID))
	s.Require().False(detached.Valid)
}

func (s *TasksIntegrationSuite) TestProjectPermissions_DenyThenGrant() {
	projectID := s.createProject("Portal relaunch")

	_, code := s.fetchProject(projectID, s.memberAuth)
	s.Require().Equal(http.StatusForbidden, code)

	rec := s.do(
		http.MethodPut,
		fmt.Sprintf("/api/users/%d/permissions/projects/%d", s.memberID, projectID),
		`{"can_view": true}`,
		s.adminAuth,
	)
	s.Require().Equal(http.StatusOK, rec.Code)

	project, code := s.fetchProject(projectID, s.memberAuth)
	s.Require().Equal(http.StatusOK, code)
	s.Require().Equal("Portal relaunch", project.Name)
}
