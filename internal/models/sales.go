package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// SalesRecord mirrors a row of sales_records.
type SalesRecord struct {
	ID       int64               `db:"id"`
	Date     string              `db:"date"`
	Cash     decimal.NullDecimal `db:"cash"`
	Debit    decimal.NullDecimal `db:"debit"`
	Credit   decimal.NullDecimal `db:"credit"`
	Svc      decimal.NullDecimal `db:"svc"`
	Tips     decimal.NullDecimal `db:"tips"`
	Tax      decimal.NullDecimal `db:"tax"`
	CashTips decimal.NullDecimal `db:"cash_tips"`
	Doordash decimal.NullDecimal `db:"doordash"`
	Stripe   decimal.NullDecimal `db:"stripe"`
	Total    decimal.NullDecimal `db:"total"`
	Memo     sql.NullString      `db:"memo"`
}
