package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvoiceItem is one product line from a vendor invoice export.
type InvoiceItem struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Vendor      string          `json:"vendor"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	DedupKey    string          `json:"-"`
}

// InvoiceDedupKey derives the natural identity of an invoice line.
func InvoiceDedupKey(date, productCode string, totalPrice decimal.Decimal) string {
	return fmt.Sprintf("%s_%s_%s", date, productCode, totalPrice.String())
}
