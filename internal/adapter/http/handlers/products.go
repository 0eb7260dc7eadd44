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

type ProductHandler struct {
	productService ports.ProductService
	clock          ports.Clock
}

func NewProductHandler(productService ports.ProductService, clock ports.Clock) *ProductHandler {
	return &ProductHandler{productService: productService, clock: clock}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	lang := middleware.GetLang(c)

	var category *domain.ProductCategory
	if value := c.Query("category"); value != "" {
		parsed := domain.ProductCategory(value)
		if !parsed.Valid() {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductPayload, lang),
			)
			return
		}
		category = &parsed
	}

	products, err := h.productService.ListProducts(c.Request.Context(), category)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProduct, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProductItems(products, h.clock.Now()))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	lang := middleware.GetLang(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductID, lang),
		)
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProductNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get product", zap.Uint64("product_id", productID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProduct, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProductItem(product, h.clock.Now()))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateProductInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductPayload, lang),
		)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create product", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateProduct, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProductItem(product, h.clock.Now()))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := middleware.GetLang(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductID, lang),
		)
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductPayload, lang),
		)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateProductInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductPayload, lang),
		)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), productID, input)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProductNotFound, lang),
			)
			return
		}
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductPayload, lang),
			)
			return
		}

		zap.L().Error("failed to update product", zap.Uint64("product_id", productID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateProduct, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProductItem(product, h.clock.Now()))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := middleware.GetLang(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProductID, lang),
		)
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProductNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete product", zap.Uint64("product_id", productID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteProduct, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
