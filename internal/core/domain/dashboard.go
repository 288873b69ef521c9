package domain

import "github.com/shopspring/decimal"

// SalesBreakdown sums sales per payment channel.
type SalesBreakdown struct {
	Cash     decimal.Decimal `json:"cash"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
	Doordash decimal.Decimal `json:"doordash"`
	Stripe   decimal.Decimal `json:"stripe"`
	Tips     decimal.Decimal `json:"tips"`
	CashTips decimal.Decimal `json:"cash_tips"`
}

// DashboardSummary is the headline aggregate shown on the dashboard.
// CurrentCash approximates physical cash on hand, it is not a ledger balance.
type DashboardSummary struct {
	TotalRevenue   decimal.Decimal
	TotalExpense   decimal.Decimal
	NetProfit      decimal.Decimal
	CurrentCash    decimal.Decimal
	SalesBreakdown SalesBreakdown
}
