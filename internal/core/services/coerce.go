package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/SscSPs/restaurant_ledger/internal/ingest"
	"github.com/shopspring/decimal"
)

// coerceAmount converts a client supplied JSON value into an amount.
// Strings go through currency cleaning; anything unusable becomes zero.
func coerceAmount(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case json.Number:
		return ingest.CleanCurrency(x.String())
	case decimal.Decimal:
		return x
	case string:
		return ingest.CleanCurrency(x)
	default:
		return decimal.Zero
	}
}

// coerceText converts a client supplied JSON value into column text.
func coerceText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
