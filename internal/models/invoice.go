package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// InvoiceItem mirrors a row of invoice_items.
type InvoiceItem struct {
	ID          int64               `db:"id"`
	Date        string              `db:"date"`
	Vendor      sql.NullString      `db:"vendor"`
	ProductCode sql.NullString      `db:"product_code"`
	ProductName sql.NullString      `db:"product_name"`
	Quantity    decimal.NullDecimal `db:"quantity"`
	Unit        sql.NullString      `db:"unit"`
	UnitPrice   decimal.NullDecimal `db:"unit_price"`
	TotalPrice  decimal.NullDecimal `db:"total_price"`
	DedupKey    string              `db:"dedup_key"`
}
