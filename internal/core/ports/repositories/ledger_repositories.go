package repositories

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
)

// LedgerReader defines read operations for statement lines.
type LedgerReader interface {
	// ListLedgerRows returns every row of the table, newest date first.
	ListLedgerRows(ctx context.Context, table domain.LedgerTable) ([]domain.LedgerRow, error)
}

// LedgerWriter defines write operations for statement lines.
type LedgerWriter interface {
	// InsertLedgerRow stores a row unless its dedup key already exists.
	// It reports whether a new row was written; a duplicate is not an error.
	InsertLedgerRow(ctx context.Context, table domain.LedgerTable, row domain.LedgerRow) (bool, error)

	// AnnotateLedgerRow writes the non-nil annotation fields of one row.
	// Returns apperrors.ErrNotFound when no row has the given id.
	AnnotateLedgerRow(ctx context.Context, table domain.LedgerTable, id int64, annotation domain.LedgerAnnotation) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
