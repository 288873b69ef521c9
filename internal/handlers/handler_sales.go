package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/SscSPs/restaurant_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type salesHandler struct {
	salesService portssvc.SalesSvcFacade
}

func newSalesHandler(svc portssvc.SalesSvcFacade) *salesHandler {
	return &salesHandler{salesService: svc}
}

func registerSalesRoutes(rg *gin.RouterGroup, svc portssvc.SalesSvcFacade) {
	h := newSalesHandler(svc)

	rg.GET("/sales", h.listSales)
	rg.POST("/update-sales", h.updateSales)
	rg.DELETE("/sales/:date", h.deleteSales)
}

// listSales godoc
// @Summary List daily sales
// @Tags sales
// @Produce json
// @Success 200 {array} domain.SalesRecord
// @Router /sales [get]
func (h *salesHandler) listSales(c *gin.Context) {
	records, err := h.salesService.ListSalesRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// updateSales godoc
// @Summary Set one field of a day's sales
// @Description Creates the day when missing and recomputes its total.
// @Tags sales
// @Accept json
// @Produce json
// @Param update body dto.UpdateSalesRequest true "Date, field and value"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} map[string]string "Invalid field or date"
// @Failure 500 {object} map[string]string "Failed to update sales"
// @Router /update-sales [post]
func (h *salesHandler) updateSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.salesService.UpdateSalesField(c.Request.Context(), req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success", Message: "Updated successfully"})
}

// deleteSales godoc
// @Summary Delete a day's sales
// @Tags sales
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} map[string]string "No sales for that date"
// @Failure 500 {object} map[string]string "Failed to delete"
// @Router /sales/{date} [delete]
func (h *salesHandler) deleteSales(c *gin.Context) {
	date := c.Param("date")
	if err := h.salesService.DeleteSalesRecord(c.Request.Context(), date); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success", Message: "Deleted"})
}
