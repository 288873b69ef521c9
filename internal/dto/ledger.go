package dto

import (
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateLedgerRowRequest carries the annotation fields of a statement line.
// Omitted fields are left unchanged.
type UpdateLedgerRowRequest struct {
	Category   *string          `json:"category"`
	Payee      *string          `json:"payee"`
	PayeeNote  *string          `json:"payee_note"`
	CashAmount *decimal.Decimal `json:"cash_amount"`
}

// ToAnnotation maps the request onto the domain annotation.
func (r UpdateLedgerRowRequest) ToAnnotation() domain.LedgerAnnotation {
	return domain.LedgerAnnotation{
		Category:   r.Category,
		Payee:      r.Payee,
		PayeeNote:  r.PayeeNote,
		CashAmount: r.CashAmount,
	}
}
