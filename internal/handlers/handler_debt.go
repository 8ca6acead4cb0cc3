package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

// debtHandler handles HTTP requests related to the debt line ledger.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// RegisterDebtRoutes registers routes related to debt lines. Creation is open to
// every authenticated role; editing persisted lines requires ADMIN or SUPERADMIN.
func RegisterDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebtLine)
		debts.POST("/batch", h.batchCreateDebtLines)
		debts.GET("", h.listDebtLines)
		debts.GET("/:id", h.getDebtLine)
		debts.PUT("/:id", middleware.RequireEditRole(), h.updateDebtLine)
		debts.PATCH("/:id/settled", middleware.RequireEditRole(), h.setSettled)
		debts.POST("/:id/deactivate", middleware.RequireEditRole(), h.deactivateDebtLine)
		debts.DELETE("/:id", middleware.RequireSuperAdmin(), h.deleteDebtLine)
	}
}

// createDebtLine godoc
// @Summary Register a debt line
// @Description Registers one obligation against a stand. The line is always created pending, never pre-settled.
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.CreateDebtLineRequest true "Debt line details"
// @Success 201 {object} dto.DebtLineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebtLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	line, err := h.debtService.CreateDebtLine(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create debt line")
		return
	}

	logger.Info("Debt line created",
		slog.String("debt_id", line.DebtID),
		slog.String("stand_id", line.StandID))
	c.JSON(http.StatusCreated, dto.ToDebtLineResponse(line))
}

// batchCreateDebtLines godoc
// @Summary Register debt lines in batch
// @Description Registers one debt line per stand with a non-zero amount under a shared concept and date. Entries with both amounts zero are skipped. Lines are independent: a failure on one stand does not roll back the others.
// @Tags debts
// @Accept json
// @Produce json
// @Param batch body dto.BatchCreateDebtLinesRequest true "Batch details"
// @Success 200 {object} dto.BatchDebtResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/batch [post]
func (h *debtHandler) batchCreateDebtLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchCreateDebtLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.debtService.BatchCreateDebtLines(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register debt batch")
		return
	}

	logger.Info("Debt batch processed",
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("failed", len(result.Failures)))
	c.JSON(http.StatusOK, result)
}

// listDebtLines godoc
// @Summary List debt lines
// @Description Lists debt lines filtered by stand, concept, active and settled state, newest debt date first, with token pagination
// @Tags debts
// @Produce json
// @Param standId query string false "Stand ID"
// @Param conceptFilter query string false "Concept ID"
// @Param active query bool false "Active state"
// @Param settled query bool false "Settled state"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListDebtLinesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebtLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDebtLinesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	lines, nextToken, err := h.debtService.ListDebtLines(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list debt lines")
		return
	}

	c.JSON(http.StatusOK, dto.ListDebtLinesResponse{
		DebtLines: dto.ToDebtLineResponses(lines),
		NextToken: nextToken,
	})
}

// getDebtLine godoc
// @Summary Get a debt line
// @Description Retrieves one debt line with its concept, stand and responsible tenant
// @Tags debts
// @Produce json
// @Param id path string true "Debt line ID"
// @Success 200 {object} dto.DebtLineResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebtLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	line, err := h.debtService.GetDebtLineByID(c.Request.Context(), debtID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve debt line")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtLineResponse(line))
}

// updateDebtLine godoc
// @Summary Update a debt line
// @Description Edits a debt line's amounts, concept, stand or date. Lowering the total below what is already paid is rejected. Omitted fields are left unchanged.
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt line ID"
// @Param debt body dto.UpdateDebtLineRequest true "Fields to update"
// @Success 200 {object} dto.DebtLineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebtLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	var req dto.UpdateDebtLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	line, err := h.debtService.UpdateDebtLine(c.Request.Context(), debtID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update debt line")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtLineResponse(line))
}

type setSettledRequest struct {
	Settled *bool `json:"settled" binding:"required"`
}

// setSettled godoc
// @Summary Toggle a debt line's settled flag
// @Description Settles or reopens a debt line. Settling a line whose balance is still positive is rejected; reopening is always allowed.
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt line ID"
// @Param body body setSettledRequest true "Target settled state"
// @Success 200 {object} dto.DebtLineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id}/settled [patch]
func (h *debtHandler) setSettled(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	var req setSettledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	line, err := h.debtService.SetSettled(c.Request.Context(), debtID, *req.Settled, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update settled state")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtLineResponse(line))
}

// deactivateDebtLine godoc
// @Summary Deactivate a debt line
// @Description Soft-removes a debt line from listings and balance calculations
// @Tags debts
// @Produce json
// @Param id path string true "Debt line ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id}/deactivate [post]
func (h *debtHandler) deactivateDebtLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	updaterUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	if err := h.debtService.DeactivateDebtLine(c.Request.Context(), debtID, updaterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate debt line")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteDebtLine godoc
// @Summary Delete a debt line
// @Description Hard-deletes an unreferenced debt line. Lines referenced by receipt details return 409 and must be deactivated instead.
// @Tags debts
// @Produce json
// @Param id path string true "Debt line ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebtLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	if err := h.debtService.DeleteDebtLine(c.Request.Context(), debtID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete debt line")
		return
	}

	logger.Info("Debt line deleted", slog.String("debt_id", debtID))
	c.Status(http.StatusNoContent)
}
