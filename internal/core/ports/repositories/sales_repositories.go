package repositories

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
)

// SalesReader defines read operations for daily sales.
type SalesReader interface {
	// ListSalesRecords returns all days, newest first.
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
}

// SalesWriter defines write operations for daily sales.
type SalesWriter interface {
	// UpsertSalesField sets one column for the date, creating the day
	// if needed, and recomputes the day's total in the same transaction.
	// value is already coerced to the column type.
	UpsertSalesField(ctx context.Context, date string, field domain.SalesField, value string) error

	// DeleteSalesRecord removes the day. Returns apperrors.ErrNotFound if absent.
	DeleteSalesRecord(ctx context.Context, date string) error
}

// SalesRepositoryFacade combines all sales-related repository interfaces
type SalesRepositoryFacade interface {
	SalesReader
	SalesWriter
}
