package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LedgerTable identifies a table that stores normalized statement lines.
// Bank statements and credit-card statements share one row shape.
type LedgerTable string

const (
	BankLedger       LedgerTable = "transactions"
	CreditCardLedger LedgerTable = "credit_card_records"
)

// LedgerTables lists every known ledger table.
var LedgerTables = []LedgerTable{BankLedger, CreditCardLedger}

// IsValid reports whether t is one of the known ledger tables.
func (t LedgerTable) IsValid() bool {
	switch t {
	case BankLedger, CreditCardLedger:
		return true
	}
	return false
}

// LedgerRow is a single bank or credit-card statement line.
type LedgerRow struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Payee         string          `json:"payee"`
	PayeeNote     string          `json:"payee_note"`
	CashAmount    decimal.Decimal `json:"cash_amount"`
	Description   string          `json:"description"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	BankBalance   decimal.Decimal `json:"bank_balance"`
	AccountSource string          `json:"account_source"`
	DedupKey      string          `json:"-"`
}

// NewLedgerRow builds an ingested statement line. Annotation fields start
// empty, net amount and dedup key are derived.
func NewLedgerRow(date, txnType, description string, income, expense, balance decimal.Decimal, source string) LedgerRow {
	return LedgerRow{
		Date:          date,
		Type:          txnType,
		Description:   description,
		Income:        income,
		Expense:       expense,
		NetAmount:     income.Sub(expense),
		BankBalance:   balance,
		AccountSource: source,
		DedupKey:      LedgerDedupKey(date, description, income, expense),
	}
}

// LedgerDedupKey derives the natural identity of a statement line.
func LedgerDedupKey(date, description string, income, expense decimal.Decimal) string {
	return fmt.Sprintf("%s_%s_%s_%s", date, description, income.String(), expense.String())
}

// LedgerAnnotation holds the post-hoc editable fields of a LedgerRow.
// Nil fields are left untouched.
type LedgerAnnotation struct {
	Category   *string
	Payee      *string
	PayeeNote  *string
	CashAmount *decimal.Decimal
}

// IsEmpty reports whether no field is set.
func (a LedgerAnnotation) IsEmpty() bool {
	return a.Category == nil && a.Payee == nil && a.PayeeNote == nil && a.CashAmount == nil
}
