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

type ApplicationHandler struct {
	applicationService ports.ApplicationService
}

func NewApplicationHandler(applicationService ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	lang := middleware.GetLang(c)

	applications, err := h.applicationService.ListApplications(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list applications", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListApplication, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToApplicationItems(applications))
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	lang := middleware.GetLang(c)

	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidApplicationID, lang),
		)
		return
	}

	application, err := h.applicationService.GetApplication(c.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgApplicationNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get application", zap.Uint64("application_id", applicationID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListApplication, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToApplicationItem(application))
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidApplicationPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidApplicationPayload, lang),
		)
		return
	}

	input := domain.CreateApplicationInput{
		Name:   name,
		Type:   domain.ApplicationType(req.Type),
		Color:  "#0EA5E9",
		Status: domain.ApplicationStatusActive,
	}
	if req.Color != nil {
		input.Color = *req.Color
	}
	if req.Status != nil {
		input.Status = domain.ApplicationStatus(*req.Status)
	}

	application, err := h.applicationService.CreateApplication(c.Request.Context(), principal, input)
	if err != nil {
		if status, msg, ok := applicationErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to create application", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateApplication, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToApplicationItem(application))
}

func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidApplicationID, lang),
		)
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidApplicationPayload, lang),
		)
		return
	}

	var input domain.UpdateApplicationInput
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidApplicationPayload, lang),
			)
			return
		}
		input.Name = &name
	}
	if req.Type != nil {
		value := domain.ApplicationType(*req.Type)
		input.Type = &value
	}
	input.Color = req.Color
	if req.Status != nil {
		value := domain.ApplicationStatus(*req.Status)
		input.Status = &value
	}

	application, err := h.applicationService.UpdateApplication(c.Request.Context(), principal, applicationID, input)
	if err != nil {
		if status, msg, ok := applicationErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to update application", zap.Uint64("application_id", applicationID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateApplication, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToApplicationItem(application))
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidApplicationID, lang),
		)
		return
	}

	if err := h.applicationService.DeleteApplication(c.Request.Context(), principal, applicationID); err != nil {
		if status, msg, ok := applicationErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to delete application", zap.Uint64("application_id", applicationID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteApplication, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func applicationErrorResponse(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, apierrors.MsgApplicationNotFound, true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, apierrors.MsgForbidden, true
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, apierrors.MsgInvalidApplicationPayload, true
	}
	return 0, "", false
}
