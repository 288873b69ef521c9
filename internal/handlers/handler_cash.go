package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/SscSPs/restaurant_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type cashHandler struct {
	cashService portssvc.CashSvcFacade
}

func newCashHandler(svc portssvc.CashSvcFacade) *cashHandler {
	return &cashHandler{cashService: svc}
}

func registerCashRoutes(rg *gin.RouterGroup, svc portssvc.CashSvcFacade) {
	h := newCashHandler(svc)

	cash := rg.Group("/cash")
	{
		cash.GET("", h.listCash)
		cash.POST("", h.createCash)
		cash.PUT("/:id", h.updateCash)
		cash.DELETE("/:id", h.deleteCash)
	}
}

// listCash godoc
// @Summary List cash records
// @Tags cash
// @Produce json
// @Success 200 {object} dto.ListResponse[domain.CashRecord]
// @Router /cash [get]
func (h *cashHandler) listCash(c *gin.Context) {
	records, err := h.cashService.ListCashRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(records))
}

// createCash godoc
// @Summary Create a cash record
// @Description The body is optional; an empty record dated today is created without one.
// @Tags cash
// @Accept json
// @Produce json
// @Param record body dto.CreateCashRequest false "Initial values"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Router /cash [post]
func (h *cashHandler) createCash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCashRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for CreateCash", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.cashService.CreateCashRecord(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success", ID: id})
}

// updateCash godoc
// @Summary Set one field of a cash record
// @Tags cash
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param update body dto.UpdateCashRequest true "Field and value"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} map[string]string "Invalid field"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to update"
// @Router /cash/{id} [put]
func (h *cashHandler) updateCash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req dto.UpdateCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCash", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.cashService.UpdateCashField(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success", Message: "Updated successfully"})
}

// deleteCash godoc
// @Summary Delete a cash record
// @Tags cash
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete"
// @Router /cash/{id} [delete]
func (h *cashHandler) deleteCash(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if err := h.cashService.DeleteCashRecord(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success", Message: "Deleted"})
}
