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

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), principal, unreadOnly)
	if err != nil {
		zap.L().Error("failed to list notifications", zap.Uint64("user_id", principal.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListNotification, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	notificationID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidNotificationID, lang),
		)
		return
	}

	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), principal, notificationID); err != nil {
		// A notification belonging to someone else reads as missing, so
		// ownership is never disclosed.
		if errors.Is(err, domain.ErrNotificationNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNotificationNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to mark notification read",
			zap.Uint64("notification_id", notificationID),
			zap.Uint64("user_id", principal.UserID),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateNotification, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	updated, err := h.notificationService.MarkAllNotificationsRead(c.Request.Context(), principal)
	if err != nil {
		zap.L().Error("failed to mark notifications read", zap.Uint64("user_id", principal.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateNotification, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}
