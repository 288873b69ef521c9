package domain

import "github.com/shopspring/decimal"

// CashRecord is a manually entered cash income or expense line.
type CashRecord struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Payee       string          `json:"payee"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
}

// CashField is a column of CashRecord that clients may edit.
type CashField string

const (
	CashDate        CashField = "date"
	CashCategory    CashField = "category"
	CashPayee       CashField = "payee"
	CashIncome      CashField = "income"
	CashExpense     CashField = "expense"
	CashBalance     CashField = "balance"
	CashDescription CashField = "description"
)

var cashFields = map[CashField]struct{}{
	CashDate: {}, CashCategory: {}, CashPayee: {}, CashIncome: {},
	CashExpense: {}, CashBalance: {}, CashDescription: {},
}

// ParseCashField maps a client supplied name onto the closed field set.
func ParseCashField(name string) (CashField, bool) {
	f := CashField(name)
	_, ok := cashFields[f]
	return f, ok
}

// IsNumeric reports whether the field holds an amount.
func (f CashField) IsNumeric() bool {
	switch f {
	case CashIncome, CashExpense, CashBalance:
		return true
	}
	return false
}
