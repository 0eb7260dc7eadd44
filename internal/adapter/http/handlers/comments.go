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

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), principal, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
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

		zap.L().Error("failed to list comments", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListComment, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCommentPayload, lang),
		)
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCommentPayload, lang),
		)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), principal, taskID, domain.CreateCommentInput{
		Content: content,
		Author:  principal.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
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

		zap.L().Error("failed to create comment", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateComment, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}
