package mapping

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// amount renders a NULL amount as zero.
func amount(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

func text(n sql.NullString) string {
	return n.String
}

func nullText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func nullAmount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
