package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/SscSPs/restaurant_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves ingested statement lines and invoice items.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(svc portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: svc}
}

func registerLedgerRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(svc)

	rg.GET("/transactions", h.listRows(domain.BankLedger))
	rg.PUT("/transactions/:id", h.annotateRow(domain.BankLedger))
	rg.GET("/credit-cards", h.listRows(domain.CreditCardLedger))
	rg.PUT("/credit-cards/:id", h.annotateRow(domain.CreditCardLedger))
	rg.GET("/invoices", h.listInvoices)
}

// listRows godoc
// @Summary List bank or credit-card statement lines
// @Description Newest first. Storage failures return an empty list.
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.ListResponse[domain.LedgerRow]
// @Router /transactions [get]
// @Router /credit-cards [get]
func (h *ledgerHandler) listRows(table domain.LedgerTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.ledgerService.ListLedgerRows(c.Request.Context(), table)
		if err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list ledger rows", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.NewListResponse(rows))
	}
}

// annotateRow godoc
// @Summary Annotate a statement line
// @Description Sets any of category, payee, payee_note and cash_amount. Omitted fields keep their value.
// @Tags ledger
// @Accept json
// @Produce json
// @Param id path int true "Row ID"
// @Param annotation body dto.UpdateLedgerRowRequest true "Fields to set"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Row not found"
// @Failure 500 {object} map[string]string "Failed to update row"
// @Router /transactions/{id} [put]
// @Router /credit-cards/{id} [put]
func (h *ledgerHandler) annotateRow(table domain.LedgerTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
			return
		}

		var req dto.UpdateLedgerRowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for ledger annotation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}

		if err := h.ledgerService.AnnotateLedgerRow(c.Request.Context(), table, id, req); err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, apperrors.ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, dto.StatusResponse{Status: "success", Message: "Updated successfully"})
	}
}

// listInvoices godoc
// @Summary List vendor invoice items
// @Description Newest first. Storage failures return an empty list.
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.ListResponse[domain.InvoiceItem]
// @Router /invoices [get]
func (h *ledgerHandler) listInvoices(c *gin.Context) {
	items, err := h.ledgerService.ListInvoiceItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items))
}
