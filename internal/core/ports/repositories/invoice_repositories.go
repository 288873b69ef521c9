package repositories

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence operations for vendor invoice lines.
type InvoiceRepositoryFacade interface {
	// InsertInvoiceItem stores an item unless its dedup key already exists.
	InsertInvoiceItem(ctx context.Context, item domain.InvoiceItem) (bool, error)

	// ListInvoiceItems returns every invoice line, newest date first.
	ListInvoiceItems(ctx context.Context) ([]domain.InvoiceItem, error)
}
