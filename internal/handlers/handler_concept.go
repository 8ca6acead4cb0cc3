package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

// conceptHandler handles HTTP requests related to debt concepts.
type conceptHandler struct {
	conceptService portssvc.ConceptSvcFacade
}

func newConceptHandler(cs portssvc.ConceptSvcFacade) *conceptHandler {
	return &conceptHandler{conceptService: cs}
}

// registerConceptRoutes registers routes related to debt concepts.
func registerConceptRoutes(rg *gin.RouterGroup, conceptService portssvc.ConceptSvcFacade) {
	h := newConceptHandler(conceptService)

	concepts := rg.Group("/concepts")
	{
		concepts.POST("", h.createConcept)
		concepts.GET("", h.listConcepts)
		concepts.GET("/:id", h.getConcept)
		concepts.PUT("/:id", middleware.RequireEditRole(), h.updateConcept)
		concepts.POST("/:id/deactivate", middleware.RequireEditRole(), h.deactivateConcept)
		concepts.DELETE("/:id", middleware.RequireSuperAdmin(), h.deleteConcept)
	}
}

// createConcept godoc
// @Summary Create a debt concept
// @Description Creates a new debt concept (rent, utilities, fines and so on)
// @Tags concepts
// @Accept json
// @Produce json
// @Param concept body dto.CreateConceptRequest true "Concept details"
// @Success 201 {object} dto.ConceptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /concepts [post]
func (h *conceptHandler) createConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	concept, err := h.conceptService.CreateConcept(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create concept")
		return
	}

	logger.Info("Concept created", slog.String("concept_id", concept.ConceptID))
	c.JSON(http.StatusCreated, dto.ToConceptResponse(concept))
}

// listConcepts godoc
// @Summary List debt concepts
// @Description Lists debt concepts, optionally restricted to active ones
// @Tags concepts
// @Produce json
// @Param activeOnly query bool false "Only return active concepts"
// @Success 200 {array} dto.ConceptResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /concepts [get]
func (h *conceptHandler) listConcepts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly := c.Query("activeOnly") == "true"

	concepts, err := h.conceptService.ListConcepts(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list concepts")
		return
	}

	responses := make([]dto.ConceptResponse, len(concepts))
	for i := range concepts {
		responses[i] = dto.ToConceptResponse(&concepts[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getConcept godoc
// @Summary Get a debt concept
// @Description Retrieves one debt concept by ID
// @Tags concepts
// @Produce json
// @Param id path string true "Concept ID"
// @Success 200 {object} dto.ConceptResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /concepts/{id} [get]
func (h *conceptHandler) getConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conceptID := c.Param("id")

	concept, err := h.conceptService.GetConceptByID(c.Request.Context(), conceptID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve concept")
		return
	}
	c.JSON(http.StatusOK, dto.ToConceptResponse(concept))
}

// updateConcept godoc
// @Summary Update a debt concept
// @Description Updates a concept's description or flags. Omitted fields are left unchanged.
// @Tags concepts
// @Accept json
// @Produce json
// @Param id path string true "Concept ID"
// @Param concept body dto.UpdateConceptRequest true "Fields to update"
// @Success 200 {object} dto.ConceptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /concepts/{id} [put]
func (h *conceptHandler) updateConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conceptID := c.Param("id")

	var req dto.UpdateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	concept, err := h.conceptService.UpdateConcept(c.Request.Context(), conceptID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update concept")
		return
	}
	c.JSON(http.StatusOK, dto.ToConceptResponse(concept))
}

// deactivateConcept godoc
// @Summary Deactivate a debt concept
// @Description Soft-removes a concept. Deactivated concepts stay on historical debt lines but cannot back new ones.
// @Tags concepts
// @Produce json
// @Param id path string true "Concept ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /concepts/{id}/deactivate [post]
func (h *conceptHandler) deactivateConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conceptID := c.Param("id")

	updaterUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	if err := h.conceptService.DeactivateConcept(c.Request.Context(), conceptID, updaterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate concept")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteConcept godoc
// @Summary Delete a debt concept
// @Description Hard-deletes an unreferenced concept. Concepts referenced by debt lines or receipts return 409 and must be deactivated instead.
// @Tags concepts
// @Produce json
// @Param id path string true "Concept ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /concepts/{id} [delete]
func (h *conceptHandler) deleteConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conceptID := c.Param("id")

	if err := h.conceptService.DeleteConcept(c.Request.Context(), conceptID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete concept")
		return
	}

	logger.Info("Concept deleted", slog.String("concept_id", conceptID))
	c.Status(http.StatusNoContent)
}
