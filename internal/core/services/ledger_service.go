package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/restaurant_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
)

type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewLedgerService creates the service behind the statement and invoice listings.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		invoiceRepo: invoiceRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) ListLedgerRows(ctx context.Context, table domain.LedgerTable) ([]domain.LedgerRow, error) {
	if !table.IsValid() {
		return nil, fmt.Errorf("%w: unknown ledger table %q", apperrors.ErrValidation, table)
	}
	rows, err := s.ledgerRepo.ListLedgerRows(ctx, table)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger rows", slog.String("table", string(table)))
		return []domain.LedgerRow{}, nil
	}
	return rows, nil
}

func (s *ledgerService) ListInvoiceItems(ctx context.Context) ([]domain.InvoiceItem, error) {
	items, err := s.invoiceRepo.ListInvoiceItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice items")
		return []domain.InvoiceItem{}, nil
	}
	return items, nil
}

func (s *ledgerService) AnnotateLedgerRow(ctx context.Context, table domain.LedgerTable, id int64, req dto.UpdateLedgerRowRequest) error {
	if !table.IsValid() {
		return fmt.Errorf("%w: unknown ledger table %q", apperrors.ErrValidation, table)
	}
	annotation := req.ToAnnotation()
	if annotation.IsEmpty() {
		s.LogDebug(ctx, "Empty ledger annotation, nothing to update", slog.Int64("id", id))
		return nil
	}

	if err := s.ledgerRepo.AnnotateLedgerRow(ctx, table, id, annotation); err != nil {
		s.LogError(ctx, err, "Failed to annotate ledger row",
			slog.String("table", string(table)),
			slog.Int64("id", id))
		return err
	}

	s.LogInfo(ctx, "Ledger row annotated", slog.String("table", string(table)), slog.Int64("id", id))
	return nil
}
