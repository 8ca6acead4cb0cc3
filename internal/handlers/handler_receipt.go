package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
)

// receiptHandler handles HTTP requests related to income and expense receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers routes related to receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("/income", h.createIncomeReceipt)
		receipts.POST("/expense", h.createExpenseReceipt)
		receipts.PUT("/income/:id", middleware.RequireEditRole(), h.updateIncomeReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/next-number", h.peekNextNumber)
		receipts.GET("/:id", h.getReceipt)
	}
}

// createIncomeReceipt godoc
// @Summary Create an income receipt
// @Description Validates the receipt draft against the fresh debt line balances and persists it atomically: every allocation increments its line's paid total and lines reaching zero balance are settled. The receipt number is assigned here, never by the client. All validation problems are reported at once in the violations list.
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateIncomeReceiptRequest true "Receipt draft"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/income [post]
func (h *receiptHandler) createIncomeReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	receipt, err := h.receiptService.CreateIncomeReceipt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create income receipt")
		return
	}

	logger.Info("Income receipt created",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.Int64("number", receipt.Number))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt, true))
}

// createExpenseReceipt godoc
// @Summary Create an expense receipt
// @Description Persists a disbursement receipt. Expense details reference concepts only, never debt lines.
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateExpenseReceiptRequest true "Expense details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/expense [post]
func (h *receiptHandler) createExpenseReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	receipt, err := h.receiptService.CreateExpenseReceipt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create expense receipt")
		return
	}

	logger.Info("Expense receipt created",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.Int64("number", receipt.Number))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt, true))
}

// updateIncomeReceipt godoc
// @Summary Update an income receipt
// @Description Replaces the receipt's detail set under the same validation as creation. Previous allocations are backed out before the new ones apply. The receipt keeps its number and the print side effect is not re-triggered.
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Param receipt body dto.CreateIncomeReceiptRequest true "Replacement draft"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/income/{id} [put]
func (h *receiptHandler) updateIncomeReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	var req dto.CreateIncomeReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustGetUserID(c, logger)
	if !ok {
		return
	}

	receipt, err := h.receiptService.UpdateIncomeReceipt(c.Request.Context(), receiptID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update income receipt")
		return
	}

	logger.Info("Income receipt updated", slog.String("receipt_id", receipt.ReceiptID))
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt, false))
}

// listReceipts godoc
// @Summary List receipts
// @Description Lists receipts of one type, newest first, with token pagination
// @Tags receipts
// @Produce json
// @Param type query string true "Receipt type" Enums(INCOME, EXPENSE)
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receiptType := domain.ReceiptType(c.Query("type"))
	if receiptType != domain.Income && receiptType != domain.Expense {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "type must be INCOME or EXPENSE"})
		return
	}

	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	receipts, nextToken, err := h.receiptService.ListReceipts(c.Request.Context(), receiptType, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list receipts")
		return
	}

	c.JSON(http.StatusOK, dto.ListReceiptsResponse{
		Receipts:  dto.ToReceiptResponses(receipts),
		NextToken: nextToken,
	})
}

// peekNextNumber godoc
// @Summary Peek the next receipt number
// @Description Reads the advisory next number for a document type. The number shown is not reserved: the authoritative number is assigned when the receipt is persisted.
// @Tags receipts
// @Produce json
// @Param documentType query string true "Document type" Enums(INCOME_RECEIPT, EXPENSE_RECEIPT)
// @Success 200 {object} dto.NextNumberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/next-number [get]
func (h *receiptHandler) peekNextNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	docType := domain.DocumentType(c.Query("documentType"))
	if docType != domain.IncomeReceiptDoc && docType != domain.ExpenseReceiptDoc {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "documentType must be INCOME_RECEIPT or EXPENSE_RECEIPT"})
		return
	}

	number, err := h.receiptService.PeekNextNumber(c.Request.Context(), docType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to read next number")
		return
	}

	c.JSON(http.StatusOK, dto.NextNumberResponse{DocumentType: docType, NextNumber: number})
}

// getReceipt godoc
// @Summary Get a receipt
// @Description Retrieves one receipt with its details
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), receiptID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt, false))
}
