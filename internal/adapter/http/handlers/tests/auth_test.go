package tests

import (
	"context"
	"encoding/json"
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

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.AuthSession, error) {
	args := m.Called(ctx, email, password)

	var session domain.AuthSession
	if value := args.Get(0); value != nil {
		session = value.(domain.AuthSession)
	}
	return session, args.Error(1)
}

func (m *authServiceMock) CurrentUser(ctx context.Context, principal domain.Principal) (domain.User, error) {
	args := m.Called(ctx, principal)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func newAuthRouter(handler *handlers.AuthHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.POST("/auth/login", handler.Login)
	api.GET("/auth/me", middleware.AuthMiddleware(testTokens), handler.CurrentUser)
	return router
}

func TestAuthHandler_Login_Success(t *testing.T) {
	hash := "$2a$10$notarealhash"
	createdAt := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	serviceMock := new(authServiceMock)
	serviceMock.On("Login", mock.Anything, "dana@workdeck.dev", "s3cret").Return(
		domain.AuthSession{
			Token: "signed.jwt.token",
			User: domain.User{
				ID:           5,
				Name:         "Dana Field",
				Email:        "dana@workdeck.dev",
				Role:         domain.RoleMember,
				PasswordHash: &hash,
				IsActive:     true,
				CreatedAt:    createdAt,
				UpdatedAt:    createdAt,
			},
		},
		nil,
	).Once()
	handler := handlers.NewAuthHandler(serviceMock)
	router := newAuthRouter(handler)

	body := `{"email": "dana@workdeck.dev", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "signed.jwt.token", got.Token)
	require.Equal(t, uint64(5), got.User.ID)
	require.Equal(t, "member", got.User.Role)
	require.True(t, got.User.CanLogin)
	// The password hash must never surface in the response.
	require.NotContains(t, rec.Body.String(), hash)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("Login", mock.Anything, "dana@workdeck.dev", "wrong").
		Return(domain.AuthSession{}, domain.ErrInvalidCredentials).Once()
	handler := handlers.NewAuthHandler(serviceMock)
	router := newAuthRouter(handler)

	body := `{"email": "dana@workdeck.dev", "password": "wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid email or password.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Login_DirectoryOnlyAccount(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("Login", mock.Anything, "lee@workdeck.dev", "s3cret").
		Return(domain.AuthSession{}, domain.ErrLoginDisabled).Once()
	handler := handlers.NewAuthHandler(serviceMock)
	router := newAuthRouter(handler)

	body := `{"email": "lee@workdeck.dev", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "This account cannot sign in.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Login_MalformedEmail(t *testing.T) {
	serviceMock := new(authServiceMock)
	handler := handlers.NewAuthHandler(serviceMock)
	router := newAuthRouter(handler)

	body := `{"email": "not-an-email", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_CurrentUser_Success(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("CurrentUser", mock.Anything, memberPrincipal).Return(
		domain.User{
			ID:       5,
			Name:     "Dana Field",
			Email:    "dana@workdeck.dev",
			Role:     domain.RoleMember,
			IsActive: true,
		},
		nil,
	).Once()
	handler := handlers.NewAuthHandler(serviceMock)
	router := newAuthRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(5), got.ID)
	require.Equal(t, "Dana Field", got.Name)
	require.False(t, got.CanLogin)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_CurrentUser_DeletedAccount(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("CurrentUser", mock.Anything, memberPrincipal).
		Return(domain.User{}, domain.ErrUserNotFound).Once()
	handler := handlers.NewAuthHandler(serviceMock)
	router := newAuthRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerToken(memberPrincipal))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Authentication required.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
