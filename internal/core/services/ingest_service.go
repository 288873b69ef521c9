package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/restaurant_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/ingest"
)

type ingestService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerWriter
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	invoiceYear int
}

// IngestServiceOption is a functional option for configuring the ingest service
type IngestServiceOption func(*ingestService)

// WithInvoiceYear fixes the year given to dates taken from invoice filenames.
func WithInvoiceYear(year int) IngestServiceOption {
	return func(s *ingestService) {
		s.invoiceYear = year
	}
}

// WithIngestClock replaces the clock used for processing dates.
func WithIngestClock(now func() time.Time) IngestServiceOption {
	return func(s *ingestService) {
		s.Now = now
	}
}

// NewIngestService creates a new ingest service with the provided options
func NewIngestService(ledgerRepo portsrepo.LedgerWriter, invoiceRepo portsrepo.InvoiceRepositoryFacade, options ...IngestServiceOption) portssvc.IngestSvc {
	svc := &ingestService{
		ledgerRepo:  ledgerRepo,
		invoiceRepo: invoiceRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.IngestSvc = (*ingestService)(nil)

// ProcessUpload reads, routes and extracts the file, saving rows as they are produced.
func (s *ingestService) ProcessUpload(ctx context.Context, content []byte, filename string, tab domain.Tab) (*domain.UploadResult, error) {
	table, err := ingest.ReadTable(content, filename)
	if err != nil {
		s.LogError(ctx, err, "Failed to read upload", slog.String("filename", filename))
		return nil, err
	}

	format, err := ingest.Route(table, filename, tab)
	if err != nil {
		s.LogInfo(ctx, "Upload rejected", slog.String("filename", filename), slog.String("tab", string(tab)), slog.String("reason", err.Error()))
		return nil, err
	}

	opts := ingest.Options{Filename: filename, InvoiceYear: s.invoiceYear, Now: s.now()}
	saved, err := format.Extract(ctx, table, opts, &repoSink{ledger: s.ledgerRepo, invoices: s.invoiceRepo})
	if err != nil {
		s.LogError(ctx, err, "Failed to process upload",
			slog.String("filename", filename),
			slog.String("format", string(format.ID)),
			slog.Int("saved", saved))
		return nil, fmt.Errorf("failed to process %s: %w", format.Name, err)
	}

	s.LogInfo(ctx, "Upload processed",
		slog.String("filename", filename),
		slog.String("format", string(format.ID)),
		slog.Int("saved", saved),
		slog.Int("rows", len(table.Rows)))
	return &domain.UploadResult{
		Status:  domain.UploadSuccess,
		Message: fmt.Sprintf("%s processed: %d new rows saved", format.Name, saved),
		Saved:   saved,
	}, nil
}

// repoSink persists extracted rows straight into the repositories.
type repoSink struct {
	ledger   portsrepo.LedgerWriter
	invoices portsrepo.InvoiceRepositoryFacade
}

func (r *repoSink) SaveLedgerRow(ctx context.Context, table domain.LedgerTable, row domain.LedgerRow) (bool, error) {
	return r.ledger.InsertLedgerRow(ctx, table, row)
}

func (r *repoSink) SaveInvoiceItem(ctx context.Context, item domain.InvoiceItem) (bool, error) {
	return r.invoices.InsertInvoiceItem(ctx, item)
}
