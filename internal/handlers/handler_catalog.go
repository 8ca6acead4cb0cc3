package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

// catalogHandler handles the payment method and collecting entity catalogs.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers the catalog routes.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	paymentMethods := rg.Group("/payment-methods")
	{
		paymentMethods.POST("", h.createPaymentMethod)
		paymentMethods.GET("", h.listPaymentMethods)
	}

	collectingEntities := rg.Group("/collecting-entities")
	{
		collectingEntities.POST("", h.createCollectingEntity)
		collectingEntities.GET("", h.listCollectingEntities)
	}
}

// createPaymentMethod godoc
// @Summary Create a payment method
// @Description Adds a payment method to the catalog
// @Tags catalogs
// @Accept json
// @Produce json
// @Param method body dto.CreatePaymentMethodRequest true "Payment method details"
// @Success 201 {object} domain.PaymentMethod
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods [post]
func (h *catalogHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	method, err := h.catalogService.CreatePaymentMethod(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create payment method")
		return
	}

	logger.Info("Payment method created", slog.String("payment_method_id", method.PaymentMethodID))
	c.JSON(http.StatusCreated, method)
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Description Lists the payment method catalog
// @Tags catalogs
// @Produce json
// @Param activeOnly query bool false "Only return active methods"
// @Success 200 {array} domain.PaymentMethod
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods [get]
func (h *catalogHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly := c.Query("activeOnly") == "true"

	methods, err := h.catalogService.ListPaymentMethods(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payment methods")
		return
	}
	c.JSON(http.StatusOK, methods)
}

// createCollectingEntity godoc
// @Summary Create a collecting entity
// @Description Adds a collecting entity (bank or processor) to the catalog
// @Tags catalogs
// @Accept json
// @Produce json
// @Param entity body dto.CreateCollectingEntityRequest true "Collecting entity details"
// @Success 201 {object} domain.CollectingEntity
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /collecting-entities [post]
func (h *catalogHandler) createCollectingEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCollectingEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	entity, err := h.catalogService.CreateCollectingEntity(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create collecting entity")
		return
	}

	logger.Info("Collecting entity created", slog.String("entity_id", entity.EntityID))
	c.JSON(http.StatusCreated, entity)
}

// listCollectingEntities godoc
// @Summary List collecting entities
// @Description Lists the collecting entity catalog
// @Tags catalogs
// @Produce json
// @Param activeOnly query bool false "Only return active entities"
// @Success 200 {array} domain.CollectingEntity
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /collecting-entities [get]
func (h *catalogHandler) listCollectingEntities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly := c.Query("activeOnly") == "true"

	entities, err := h.catalogService.ListCollectingEntities(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list collecting entities")
		return
	}
	c.JSON(http.StatusOK, entities)
}
