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

type SubscriptionHandler struct {
	subscriptionService ports.SubscriptionService
	clock               ports.Clock
}

func NewSubscriptionHandler(subscriptionService ports.SubscriptionService, clock ports.Clock) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, clock: clock}
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	lang := middleware.GetLang(c)

	activeOnly := c.Query("active") == "true"

	subscriptions, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), activeOnly)
	if err != nil {
		zap.L().Error("failed to list subscriptions", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSubscription, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubscriptionItems(subscriptions, h.clock.Now()))
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	lang := middleware.GetLang(c)

	subscriptionID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionID, lang),
		)
		return
	}

	subscription, err := h.subscriptionService.GetSubscription(c.Request.Context(), subscriptionID)
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgSubscriptionNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get subscription", zap.Uint64("subscription_id", subscriptionID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSubscription, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubscriptionItem(subscription, h.clock.Now()))
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateSubscriptionInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
		)
		return
	}

	subscription, err := h.subscriptionService.CreateSubscription(c.Request.Context(), input)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create subscription", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateSubscription, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubscriptionItem(subscription, h.clock.Now()))
}

func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	lang := middleware.GetLang(c)

	subscriptionID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionID, lang),
		)
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
		)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateSubscriptionInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
		)
		return
	}

	subscription, err := h.subscriptionService.UpdateSubscription(c.Request.Context(), subscriptionID, input)
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgSubscriptionNotFound, lang),
			)
			return
		}
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionPayload, lang),
			)
			return
		}

		zap.L().Error("failed to update subscription", zap.Uint64("subscription_id", subscriptionID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateSubscription, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubscriptionItem(subscription, h.clock.Now()))
}

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	lang := middleware.GetLang(c)

	subscriptionID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubscriptionID, lang),
		)
		return
	}

	if err := h.subscriptionService.DeleteSubscription(c.Request.Context(), subscriptionID); err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgSubscriptionNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete subscription", zap.Uint64("subscription_id", subscriptionID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteSubscription, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
