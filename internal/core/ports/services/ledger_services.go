package services

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
)

// LedgerReaderSvc defines read operations for ingested statement and invoice lines
type LedgerReaderSvc interface {
	// ListLedgerRows lists a ledger table newest first. Storage failures
	// degrade to an empty list.
	ListLedgerRows(ctx context.Context, table domain.LedgerTable) ([]domain.LedgerRow, error)

	// ListInvoiceItems lists invoice lines newest first.
	ListInvoiceItems(ctx context.Context) ([]domain.InvoiceItem, error)
}

// LedgerWriterSvc defines the post-hoc edits allowed on ingested rows
type LedgerWriterSvc interface {
	// AnnotateLedgerRow writes the supplied annotation fields of a row.
	AnnotateLedgerRow(ctx context.Context, table domain.LedgerTable, id int64, req dto.UpdateLedgerRowRequest) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
