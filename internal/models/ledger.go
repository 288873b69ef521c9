package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// LedgerRow mirrors a row of transactions or credit_card_records.
// Annotation columns are nullable until a user edits them.
type LedgerRow struct {
	ID            int64               `db:"id"`
	Date          string              `db:"date"`
	Type          sql.NullString      `db:"type"`
	Category      sql.NullString      `db:"category"`
	Payee         sql.NullString      `db:"payee"`
	PayeeNote     sql.NullString      `db:"payee_note"`
	CashAmount    decimal.NullDecimal `db:"cash_amount"`
	Description   sql.NullString      `db:"description"`
	Income        decimal.NullDecimal `db:"income"`
	Expense       decimal.NullDecimal `db:"expense"`
	NetAmount     decimal.NullDecimal `db:"net_amount"`
	BankBalance   decimal.NullDecimal `db:"bank_balance"`
	AccountSource sql.NullString      `db:"account_source"`
	DedupKey      string              `db:"dedup_key"`
}
