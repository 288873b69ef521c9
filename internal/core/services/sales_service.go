package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/restaurant_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
)

type salesService struct {
	BaseService
	salesRepo portsrepo.SalesRepositoryFacade
}

// NewSalesService creates the daily sales service.
func NewSalesService(repo portsrepo.SalesRepositoryFacade) portssvc.SalesSvcFacade {
	return &salesService{salesRepo: repo}
}

var _ portssvc.SalesSvcFacade = (*salesService)(nil)

func (s *salesService) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	records, err := s.salesRepo.ListSalesRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales records")
		return []domain.SalesRecord{}, nil
	}
	return records, nil
}

// UpdateSalesField validates the field against the closed set before any
// query runs, then upserts it as an amount or, for memo, as text.
func (s *salesService) UpdateSalesField(ctx context.Context, req dto.UpdateSalesRequest) error {
	field, ok := domain.ParseSalesField(req.Field)
	if !ok {
		return fmt.Errorf("%w: invalid sales field %q", apperrors.ErrValidation, req.Field)
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, req.Date)
	}

	var value string
	if field.IsNumeric() {
		value = coerceAmount(req.Value).String()
	} else {
		value = coerceText(req.Value)
	}

	if err := s.salesRepo.UpsertSalesField(ctx, req.Date, field, value); err != nil {
		s.LogError(ctx, err, "Failed to update sales field",
			slog.String("date", req.Date),
			slog.String("field", string(field)))
		return err
	}

	s.LogInfo(ctx, "Sales field updated", slog.String("date", req.Date), slog.String("field", string(field)))
	return nil
}

func (s *salesService) DeleteSalesRecord(ctx context.Context, date string) error {
	if err := s.salesRepo.DeleteSalesRecord(ctx, date); err != nil {
		s.LogError(ctx, err, "Failed to delete sales record", slog.String("date", date))
		return err
	}
	s.LogInfo(ctx, "Sales record deleted", slog.String("date", date))
	return nil
}
