package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/adapter/http/mapper"
	"workdeck/internal/adapter/http/middleware"
	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
	"workdeck/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCredentials, lang),
		)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrLoginDisabled) {
			c.JSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgLoginDisabled, lang),
			)
			return
		}

		zap.L().Error("failed to log user in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: session.Token,
		User:  mapper.ToUserItem(session.User),
	})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	user, err := h.authService.CurrentUser(c.Request.Context(), principal)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		zap.L().Error("failed to load current user", zap.Uint64("user_id", principal.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCurrentUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
