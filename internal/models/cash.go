package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// CashRecord mirrors a row of cash_records.
type CashRecord struct {
	ID          int64               `db:"id"`
	Date        string              `db:"date"`
	Category    sql.NullString      `db:"category"`
	Payee       sql.NullString      `db:"payee"`
	Income      decimal.NullDecimal `db:"income"`
	Expense     decimal.NullDecimal `db:"expense"`
	Balance     decimal.NullDecimal `db:"balance"`
	Description sql.NullString      `db:"description"`
}
