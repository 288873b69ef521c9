package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardService
}

func registerDashboardRoutes(rg *gin.RouterGroup, svc portssvc.DashboardService) {
	h := &dashboardHandler{dashboardService: svc}
	rg.GET("/dashboard-summary", h.summary)
}

// summary godoc
// @Summary Dashboard summary
// @Description Revenue, expense, profit, cash on hand and per-channel sales, optionally limited to one month.
// @Tags dashboard
// @Produce json
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Router /dashboard-summary [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	s, err := h.dashboardService.Summary(c.Request.Context(), c.Query("month"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(s))
}
