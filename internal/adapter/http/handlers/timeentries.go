package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/adapter/http/mapper"
	"workdeck/internal/adapter/http/middleware"
	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
	"workdeck/pkg/apierrors"
)

type TimeEntryHandler struct {
	timeEntryService ports.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService ports.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{timeEntryService: timeEntryService}
}

func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
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

	entries, err := h.timeEntryService.ListTimeEntries(c.Request.Context(), principal, taskID)
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

		zap.L().Error("failed to list time entries", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTimeEntry, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeEntryItems(entries))
}

func (h *TimeEntryHandler) CreateTimeEntry(c *gin.Context) {
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

	var req dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTimeEntryPayload, lang),
		)
		return
	}

	// Entries land on today unless the payload pins a date.
	date := time.Now()
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTimeEntryPayload, lang),
			)
			return
		}
		date = parsed
	}

	entry, err := h.timeEntryService.CreateTimeEntry(c.Request.Context(), principal, taskID, domain.CreateTimeEntryInput{
		Description: req.Description,
		Minutes:     req.Minutes,
		Date:        date,
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
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTimeEntryPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create time entry", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTimeEntry, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTimeEntryItem(entry))
}

func (h *TimeEntryHandler) DeleteTimeEntry(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	entryID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTimeEntryID, lang),
		)
		return
	}

	if err := h.timeEntryService.DeleteTimeEntry(c.Request.Context(), principal, entryID); err != nil {
		if errors.Is(err, domain.ErrTimeEntryNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTimeEntryNotFound, lang),
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

		zap.L().Error("failed to delete time entry", zap.Uint64("time_entry_id", entryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTimeEntry, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
