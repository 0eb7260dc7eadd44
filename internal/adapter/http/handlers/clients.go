package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

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

type ClientHandler struct {
	clientService ports.ClientService
}

func NewClientHandler(clientService ports.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	var filter domain.ClientFilter
	if value := c.Query("status"); value != "" {
		status := domain.ClientStatus(value)
		if !status.Valid() {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientPayload, lang),
			)
			return
		}
		filter.Status = &status
	}
	filter.Query = strings.TrimSpace(c.Query("q"))

	clients, err := h.clientService.ListClients(c.Request.Context(), principal, filter)
	if err != nil {
		zap.L().Error("failed to list clients", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListClient, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToClientItems(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	clientID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientID, lang),
		)
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), principal, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgClientNotFound, lang),
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

		zap.L().Error("failed to get client", zap.Uint64("client_id", clientID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListClient, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToClientItem(client))
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	var req dto.CreateClientRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientPayload, lang),
		)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateClientInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientPayload, lang),
		)
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), principal, input)
	if err != nil {
		if status, msg, ok := clientErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to create client", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateClient, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToClientItem(client))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	clientID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientID, lang),
		)
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientPayload, lang),
		)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateClientInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientPayload, lang),
		)
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), principal, clientID, input)
	if err != nil {
		if status, msg, ok := clientErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to update client", zap.Uint64("client_id", clientID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateClient, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToClientItem(client))
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal := middleware.GetPrincipal(c)

	clientID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientID, lang),
		)
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), principal, clientID); err != nil {
		if status, msg, ok := clientErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msg, lang))
			return
		}

		zap.L().Error("failed to delete client", zap.Uint64("client_id", clientID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteClient, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func clientErrorResponse(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, apierrors.MsgClientNotFound, true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, apierrors.MsgForbidden, true
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, apierrors.MsgInvalidClientPayload, true
	}
	return 0, "", false
}
