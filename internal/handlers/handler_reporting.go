package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

// reportingHandler handles the financial report endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/concept-collection", h.conceptCollection)
		reports.GET("/debtors", h.debtors)
		reports.GET("/income-expense", h.incomeExpense)
	}
}

// bindRange binds the from/to query parameters, defaulting an absent "to" to now.
func bindRange(c *gin.Context) (dto.ReportRangeParams, bool) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date range: " + err.Error()})
		return params, false
	}
	if params.To.IsZero() {
		params.To = time.Now().UTC()
	}
	return params, true
}

// conceptCollection godoc
// @Summary Collection report by concept
// @Description Aggregates billed, collected and outstanding totals per concept for debt lines dated within the range
// @Tags reports
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {array} domain.ConceptCollectionRow
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/concept-collection [get]
func (h *reportingHandler) conceptCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindRange(c)
	if !ok {
		return
	}

	report, err := h.reportingService.ConceptCollection(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build concept collection report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// debtors godoc
// @Summary Debtors report
// @Description Lists stands carrying outstanding balances, largest debt first, with the current tenant when one exists
// @Tags reports
// @Produce json
// @Success 200 {array} domain.DebtorRow
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/debtors [get]
func (h *reportingHandler) debtors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.Debtors(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build debtors report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// incomeExpense godoc
// @Summary Income and expense summary
// @Description Totals income and expense receipts created within the range and reports the net
// @Tags reports
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.IncomeExpenseSummary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/income-expense [get]
func (h *reportingHandler) incomeExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindRange(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.IncomeExpenseSummary(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build income/expense summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
