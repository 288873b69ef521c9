package dto

import (
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse is the dashboard payload. Balance repeats
// CurrentCash under the key the dashboard UI reads.
type DashboardSummaryResponse struct {
	TotalRevenue   decimal.Decimal       `json:"totalRevenue"`
	TotalExpense   decimal.Decimal       `json:"totalExpense"`
	NetProfit      decimal.Decimal       `json:"netProfit"`
	CurrentCash    decimal.Decimal       `json:"currentCash"`
	Balance        decimal.Decimal       `json:"balance"`
	SalesBreakdown domain.SalesBreakdown `json:"salesBreakdown"`
}

// ToDashboardSummaryResponse converts the domain summary to its response DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalRevenue:   s.TotalRevenue,
		TotalExpense:   s.TotalExpense,
		NetProfit:      s.NetProfit,
		CurrentCash:    s.CurrentCash,
		Balance:        s.CurrentCash,
		SalesBreakdown: s.SalesBreakdown,
	}
}
