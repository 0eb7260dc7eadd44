package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/adapter/http/mapper"
	"workdeck/internal/adapter/http/middleware"
	"workdeck/internal/adapter/http/validation"
	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
	"workdeck/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	var filter domain.ProjectFilter
	clientID, ok := parseOptionalUintQuery(c, "client_id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}
	filter.ClientID = clientID
	if value := c.Query("status"); value != "" {
		status := domain.ProjectStatus(value)
		if !status.Valid() {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
			)
			return
		}
		filter.Status = &status
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), principal, filter)
	if err != nil {
		zap.L().Error("failed to list projects", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProject, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectID, lang),
		)
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), principal, projectID)
	if err != nil {
		if status, msg, ok := projectErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to get project", zap.Uint64("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProject, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateProjectInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), principal, input)
	if err != nil {
		if status, msg, ok := projectErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to create project", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateProject, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectID, lang),
		)
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateProjectInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), principal, projectID, input)
	if err != nil {
		if status, msg, ok := projectErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to update project", zap.Uint64("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateProject, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectID, lang),
		)
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), principal, projectID); err != nil {
		if status, msg, ok := projectErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to delete project", zap.Uint64("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteProject, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ListProjectApplications(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectID, lang),
		)
		return
	}

	applications, err := h.projectService.ListProjectApplications(c.Request.Context(), principal, projectID)
	if err != nil {
		if status, msg, ok := projectErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to list project applications", zap.Uint64("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListApplication, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToApplicationItems(applications))
}

func (h *ProjectHandler) LinkApplication(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectID, lang),
		)
		return
	}
	applicationID, ok := parseIDParam(c, "applicationId")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidApplicationID, lang),
		)
		return
	}

	if err := h.projectService.LinkApplication(c.Request.Context(), principal, projectID, applicationID); err != nil {
		if status, msg, ok := projectErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to link application",
			zap.Uint64("project_id", projectID),
			zap.Uint64("application_id", applicationID),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLinkApplication, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) UnlinkApplication(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectID, lang),
		)
		return
	}
	applicationID, ok := parseIDParam(c, "applicationId")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidApplicationID, lang),
		)
		return
	}

	if err := h.projectService.UnlinkApplication(c.Request.Context(), principal, projectID, applicationID); err != nil {
		if status, msg, ok := projectErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to unlink application",
			zap.Uint64("project_id", projectID),
			zap.Uint64("application_id", applicationID),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUnlinkApplication, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func projectErrorResponse(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, apierrors.MsgProjectNotFound, true
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, apierrors.MsgClientNotFound, true
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, apierrors.MsgApplicationNotFound, true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, apierrors.MsgForbidden, true
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, true
	}
	return 0, "", false
}
