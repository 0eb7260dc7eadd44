package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workdeck/internal/adapter/http/mapper"
	"workdeck/internal/adapter/http/middleware"
	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
	"workdeck/pkg/apierrors"
)

type ActivityHandler struct {
	activityService ports.ActivityService
}

func NewActivityHandler(activityService ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter, ok := activityFilterFromQuery(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgFailListActivity, lang),
		)
		return
	}

	activities, err := h.activityService.ListActivities(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list activities", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityItems(activities))
}

func activityFilterFromQuery(c *gin.Context) (domain.ActivityFilter, bool) {
	var filter domain.ActivityFilter

	projectID, ok := parseOptionalUintQuery(c, "project_id")
	if !ok {
		return filter, false
	}
	filter.ProjectID = projectID

	taskID, ok := parseOptionalUintQuery(c, "task_id")
	if !ok {
		return filter, false
	}
	filter.TaskID = taskID

	if value := c.Query("limit"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			return filter, false
		}
		filter.Limit = limit
	}
	if value := c.Query("offset"); value != "" {
		offset, err := strconv.Atoi(value)
		if err != nil || offset < 0 {
			return filter, false
		}
		filter.Offset = offset
	}

	return filter, true
}
