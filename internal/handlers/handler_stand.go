package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

// standHandler handles HTTP requests related to stands, including the nested
// tenant assignment and outstanding debt routes.
type standHandler struct {
	standService  portssvc.StandSvcFacade
	tenantService portssvc.TenantSvcFacade
	debtService   portssvc.DebtSvcFacade
}

func newStandHandler(ss portssvc.StandSvcFacade, ts portssvc.TenantSvcFacade, ds portssvc.DebtSvcFacade) *standHandler {
	return &standHandler{standService: ss, tenantService: ts, debtService: ds}
}

// registerStandRoutes registers routes related to stands.
func registerStandRoutes(rg *gin.RouterGroup, standService portssvc.StandSvcFacade, tenantService portssvc.TenantSvcFacade, debtService portssvc.DebtSvcFacade) {
	h := newStandHandler(standService, tenantService, debtService)

	stands := rg.Group("/stands")
	{
		stands.POST("", h.createStand)
		stands.GET("", h.listStands)
		stands.GET("/:id", h.getStand)
		stands.PUT("/:id", middleware.RequireEditRole(), h.updateStand)
		stands.POST("/:id/deactivate", middleware.RequireEditRole(), h.deactivateStand)
		stands.DELETE("/:id", middleware.RequireSuperAdmin(), h.deleteStand)

		stands.GET("/:id/tenant", h.getCurrentTenant)
		stands.PUT("/:id/tenant", middleware.RequireEditRole(), h.assignTenant)
		stands.DELETE("/:id/tenant", middleware.RequireEditRole(), h.removeTenant)
		stands.GET("/:id/tenant-history", h.getTenantHistory)

		stands.GET("/:id/outstanding-debts", h.listOutstandingDebts)
	}
}

// createStand godoc
// @Summary Create a stand
// @Description Creates a new commercial stand
// @Tags stands
// @Accept json
// @Produce json
// @Param stand body dto.CreateStandRequest true "Stand details"
// @Success 201 {object} dto.StandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands [post]
func (h *standHandler) createStand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	stand, err := h.standService.CreateStand(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create stand")
		return
	}

	logger.Info("Stand created", slog.String("stand_id", stand.StandID))
	c.JSON(http.StatusCreated, dto.ToStandResponse(stand))
}

// listStands godoc
// @Summary List stands
// @Description Lists stands, optionally filtered by market level and active state
// @Tags stands
// @Produce json
// @Param level query int false "Market level"
// @Param activeOnly query bool false "Only return active stands"
// @Success 200 {array} dto.StandResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands [get]
func (h *standHandler) listStands(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var level *int
	if raw := c.Query("level"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid level parameter"})
			return
		}
		level = &parsed
	}
	activeOnly := c.Query("activeOnly") == "true"

	stands, err := h.standService.ListStands(c.Request.Context(), level, activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list stands")
		return
	}

	responses := make([]dto.StandResponse, len(stands))
	for i := range stands {
		responses[i] = dto.ToStandResponse(&stands[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getStand godoc
// @Summary Get a stand
// @Description Retrieves one stand by ID
// @Tags stands
// @Produce json
// @Param id path string true "Stand ID"
// @Success 200 {object} dto.StandResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands/{id} [get]
func (h *standHandler) getStand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	standID := c.Param("id")

	stand, err := h.standService.GetStandByID(c.Request.Context(), standID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve stand")
		return
	}
	c.JSON(http.StatusOK, dto.ToStandResponse(stand))
}

// updateStand godoc
// @Summary Update a stand
// @Description Updates a stand's description, level or owner. Omitted fields are left unchanged.
// @Tags stands
// @Accept json
// @Produce json
// @Param id path string true "Stand ID"
// @Param stand body dto.UpdateStandRequest true "Fields to update"
// @Success 200 {object} dto.StandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands/{id} [put]
func (h *standHandler) updateStand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	standID := c.Param("id")

	var req dto.UpdateStandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	stand, err := h.standService.UpdateStand(c.Request.Context(), standID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update stand")
		return
	}
	c.JSON(http.StatusOK, dto.ToStandResponse(stand))
}

// deactivateStand godoc
// @Summary Deactivate a stand
// @Description Soft-removes a stand from the active listing
// @Tags stands
// @Produce json
// @Param id path string true "Stand ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands/{id}/deactivate [post]
func (h *standHandler) deactivateStand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	standID := c.Param("id")

	updaterUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	if err := h.standService.DeactivateStand(c.Request.Context(), standID, updaterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate stand")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteStand godoc
// @Summary Delete a stand
// @Description Hard-deletes an unreferenced stand. Stands referenced by debt lines, receipts or tenancy history return 409.
// @Tags stands
// @Produce json
// @Param id path string true "Stand ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands/{id} [delete]
func (h *standHandler) deleteStand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	standID := c.Param("id")

	if err := h.standService.DeleteStand(c.Request.Context(), standID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete stand")
		return
	}

	logger.Info("Stand deleted", slog.String("stand_id", standID))
	c.Status(http.StatusNoContent)
}

// getCurrentTenant godoc
// @Summary Get the stand's current tenant
// @Description Retrieves the stand's current tenant assignment. Returns 204 when the stand is unassigned.
// @Tags stands
// @Produce json
// @Param id path string true "Stand ID"
// @Success 200 {object} dto.AssignmentResponse
// @Success 204 "Stand has no current tenant"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands/{id}/tenant [get]
func (h *standHandler) getCurrentTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	standID := c.Param("id")

	assignment, err := h.tenantService.GetCurrent(c.Request.Context(), standID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve current tenant")
		return
	}
	if assignment == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// assignTenant godoc
// @Summary Assign a tenant to a stand
// @Description Makes the tenant the stand's current one. Any previous assignment is superseded, not deleted.
// @Tags stands
// @Accept json
// @Produce json
// @Param id path string true "Stand ID"
// @Param assignment body dto.AssignTenantRequest true "Tenant and start date"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands/{id}/tenant [put]
func (h *standHandler) assignTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AssignTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	req.StandID = c.Param("id")

	creatorUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	assignment, err := h.tenantService.Assign(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to assign tenant")
		return
	}

	logger.Info("Tenant assigned",
		slog.String("stand_id", assignment.StandID),
		slog.String("tenant_id", assignment.TenantID))
	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// removeTenant godoc
// @Summary Remove the stand's current tenant
// @Description Clears the stand's current assignment. Idempotent when the stand is already unassigned.
// @Tags stands
// @Produce json
// @Param id path string true "Stand ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands/{id}/tenant [delete]
func (h *standHandler) removeTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	standID := c.Param("id")

	updaterUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	if err := h.tenantService.Remove(c.Request.Context(), standID, updaterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to remove tenant")
		return
	}
	c.Status(http.StatusNoContent)
}

// getTenantHistory godoc
// @Summary Get a stand's tenancy history
// @Description Lists every tenancy record for the stand, newest start date first, including the current one
// @Tags stands
// @Produce json
// @Param id path string true "Stand ID"
// @Success 200 {array} dto.AssignmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands/{id}/tenant-history [get]
func (h *standHandler) getTenantHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	standID := c.Param("id")

	history, err := h.tenantService.GetHistory(c.Request.Context(), standID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve tenancy history")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssignmentResponses(history))
}

// listOutstandingDebts godoc
// @Summary List a stand's outstanding debt lines
// @Description Lists the stand's debt lines with a positive balance, oldest first. Debt lines already drafted onto an in-progress receipt can be excluded.
// @Tags stands
// @Produce json
// @Param id path string true "Stand ID"
// @Param excludeDebtIds query string false "Comma-separated debt line IDs to exclude"
// @Success 200 {object} dto.ListDebtLinesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stands/{id}/outstanding-debts [get]
func (h *standHandler) listOutstandingDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	standID := c.Param("id")

	var excludeDebtIDs []string
	if raw := c.Query("excludeDebtIds"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				excludeDebtIDs = append(excludeDebtIDs, trimmed)
			}
		}
	}

	lines, err := h.debtService.ListOutstanding(c.Request.Context(), standID, excludeDebtIDs)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list outstanding debts")
		return
	}
	c.JSON(http.StatusOK, dto.ListDebtLinesResponse{DebtLines: dto.ToDebtLineResponses(lines)})
}
