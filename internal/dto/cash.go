package dto

import "github.com/shopspring/decimal"

// CreateCashRequest describes a new cash record. Every field is optional;
// the date defaults to today.
type CreateCashRequest struct {
	Date        string          `json:"date" binding:"omitempty,iso_date"`
	Category    string          `json:"category"`
	Payee       string          `json:"payee"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
}

// UpdateCashRequest sets a single field of a cash record.
type UpdateCashRequest struct {
	Field string `json:"field" binding:"required,cash_field"`
	Value any    `json:"value"`
}
