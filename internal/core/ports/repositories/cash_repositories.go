package repositories

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
)

// CashReader defines read operations for manual cash records.
type CashReader interface {
	// ListCashRecords returns all records ordered by date then id, newest first.
	ListCashRecords(ctx context.Context) ([]domain.CashRecord, error)
}

// CashWriter defines write operations for manual cash records.
type CashWriter interface {
	// SaveCashRecord inserts the record and returns its id.
	SaveCashRecord(ctx context.Context, record domain.CashRecord) (int64, error)

	// UpdateCashField sets one column. value is already coerced to the
	// column's type (text, or a decimal string for amounts).
	UpdateCashField(ctx context.Context, id int64, field domain.CashField, value string) error

	// DeleteCashRecord removes a record. Returns apperrors.ErrNotFound if absent.
	DeleteCashRecord(ctx context.Context, id int64) error
}

// CashRepositoryFacade combines all cash-related repository interfaces
type CashRepositoryFacade interface {
	CashReader
	CashWriter
}
