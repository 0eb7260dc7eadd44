package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/adapter/http/mapper"
	"workdeck/internal/adapter/http/middleware"
	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
	"workdeck/pkg/apierrors"
)

type UserHandler struct {
	userService       ports.UserService
	permissionService ports.PermissionService
}

func NewUserHandler(userService ports.UserService, permissionService ports.PermissionService) *UserHandler {
	return &UserHandler{userService: userService, permissionService: permissionService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserID, lang),
		)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), principal, domain.CreateUserInput{
		Name:        name,
		Email:       req.Email,
		Role:        domain.UserRole(req.Role),
		Password:    req.Password,
		AvatarColor: req.AvatarColor,
	})
	if err != nil {
		if status, msg, ok := userErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to create user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateUser, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserID, lang),
		)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	var input domain.UpdateUserInput
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
			)
			return
		}
		input.Name = &name
	}
	input.Email = req.Email
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		input.Role = &role
	}
	input.Password = req.Password
	input.AvatarColor = req.AvatarColor
	input.IsActive = req.IsActive

	user, err := h.userService.UpdateUser(c.Request.Context(), principal, userID, input)
	if err != nil {
		if status, msg, ok := userErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to update user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserID, lang),
		)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), principal, userID); err != nil {
		if status, msg, ok := userErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to delete user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteUser, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ListUserPermissions(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserID, lang),
		)
		return
	}

	permissions, err := h.permissionService.ListUserPermissions(c.Request.Context(), principal, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang),
			)
			return
		}

		zap.L().Error("failed to list user permissions", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListPermissions, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserPermissionsItem(permissions))
}

func (h *UserHandler) AssignClientPermission(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserID, lang),
		)
		return
	}
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientID, lang),
		)
		return
	}

	var req dto.PermissionSetPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPermission, lang),
		)
		return
	}

	grant, err := h.permissionService.AssignClientPermission(c.Request.Context(), principal, userID, clientID, domain.PermissionSet{
		CanView:   req.CanView,
		CanEdit:   req.CanEdit,
		CanDelete: req.CanDelete,
		CanManage: req.CanManage,
	})
	if err != nil {
		if status, msg, ok := permissionErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to assign client permission",
			zap.Uint64("user_id", userID),
			zap.Uint64("client_id", clientID),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAssignPermission, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToClientPermissionItem(grant))
}

func (h *UserHandler) AssignProjectPermission(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserID, lang),
		)
		return
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectID, lang),
		)
		return
	}

	var req dto.PermissionSetPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPermission, lang),
		)
		return
	}

	grant, err := h.permissionService.AssignProjectPermission(c.Request.Context(), principal, userID, projectID, domain.PermissionSet{
		CanView:   req.CanView,
		CanEdit:   req.CanEdit,
		CanDelete: req.CanDelete,
		CanManage: req.CanManage,
	})
	if err != nil {
		if status, msg, ok := permissionErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to assign project permission",
			zap.Uint64("user_id", userID),
			zap.Uint64("project_id", projectID),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAssignPermission, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectPermissionItem(grant))
}

func userErrorResponse(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, apierrors.MsgUserNotFound, true
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, apierrors.MsgEmailTaken, true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, apierrors.MsgForbidden, true
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, apierrors.MsgInvalidUserPayload, true
	}
	return 0, "", false
}

func permissionErrorResponse(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, apierrors.MsgUserNotFound, true
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, apierrors.MsgClientNotFound, true
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, apierrors.MsgProjectNotFound, true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, apierrors.MsgForbidden, true
	}
	return 0, "", false
}
