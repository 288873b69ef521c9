package mapping

import (
	"database/sql"
	"testing"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/SscSPs/restaurant_ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainLedgerRow_NullsBecomeZeroValues(t *testing.T) {
	m := models.LedgerRow{
		ID:      3,
		Date:    "2024-01-02",
		Income:  decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true},
		Payee:   sql.NullString{},
		Expense: decimal.NullDecimal{},
	}

	d := ToDomainLedgerRow(m)

	assert.Equal(t, int64(3), d.ID)
	assert.Equal(t, "", d.Payee)
	assert.True(t, d.Expense.IsZero())
	assert.True(t, d.CashAmount.IsZero())
	assert.True(t, decimal.NewFromInt(10).Equal(d.Income))
}

func TestToModelLedgerRow(t *testing.T) {
	row := domain.NewLedgerRow("2024-01-02", "DEBIT", "RENT", decimal.Zero, decimal.NewFromInt(900), decimal.Zero, "Main Bank (Truist)")

	m := ToModelLedgerRow(row)

	assert.True(t, m.Description.Valid)
	assert.Equal(t, "RENT", m.Description.String)
	assert.True(t, m.NetAmount.Valid)
	assert.True(t, decimal.NewFromInt(-900).Equal(m.NetAmount.Decimal))
	assert.Equal(t, row.DedupKey, m.DedupKey)
}

func TestToDomainSalesRecordSlice(t *testing.T) {
	ms := []models.SalesRecord{
		{Date: "2024-01-15", Total: decimal.NullDecimal{Decimal: decimal.NewFromInt(100), Valid: true}, Memo: sql.NullString{String: "busy", Valid: true}},
		{Date: "2024-01-14"},
	}

	ds := ToDomainSalesRecordSlice(ms)

	assert.Len(t, ds, 2)
	assert.Equal(t, "busy", ds[0].Memo)
	assert.True(t, ds[1].Total.IsZero())
	assert.True(t, ds[1].Cash.IsZero())
}

func TestCashRecordRoundTripKeepsValues(t *testing.T) {
	d := domain.CashRecord{ID: 1, Date: "2025-02-03", Category: "Tips", Expense: decimal.RequireFromString("12.5")}

	got := ToDomainCashRecord(ToModelCashRecord(d))

	assert.Equal(t, d.Category, got.Category)
	assert.True(t, d.Expense.Equal(got.Expense))
	assert.True(t, got.Income.IsZero())
}
