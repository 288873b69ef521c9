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

type cashService struct {
	BaseService
	cashRepo portsrepo.CashRepositoryFacade
}

// CashServiceOption is a functional option for configuring the cash service
type CashServiceOption func(*cashService)

// WithCashClock replaces the clock used to date new records.
func WithCashClock(now func() time.Time) CashServiceOption {
	return func(s *cashService) {
		s.Now = now
	}
}

// NewCashService creates the manual cash record service.
func NewCashService(repo portsrepo.CashRepositoryFacade, options ...CashServiceOption) portssvc.CashSvcFacade {
	svc := &cashService{cashRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CashSvcFacade = (*cashService)(nil)

func (s *cashService) ListCashRecords(ctx context.Context) ([]domain.CashRecord, error) {
	records, err := s.cashRepo.ListCashRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash records")
		return []domain.CashRecord{}, nil
	}
	return records, nil
}

func (s *cashService) CreateCashRecord(ctx context.Context, req dto.CreateCashRequest) (int64, error) {
	record := domain.CashRecord{
		Date:        req.Date,
		Category:    req.Category,
		Payee:       req.Payee,
		Income:      req.Income,
		Expense:     req.Expense,
		Balance:     req.Balance,
		Description: req.Description,
	}
	if record.Date == "" {
		record.Date = s.today()
	}

	id, err := s.cashRepo.SaveCashRecord(ctx, record)
	if err != nil {
		s.LogError(ctx, err, "Failed to save cash record", slog.String("date", record.Date))
		return 0, err
	}

	s.LogInfo(ctx, "Cash record created", slog.Int64("id", id), slog.String("date", record.Date))
	return id, nil
}

// UpdateCashField rejects fields outside the editable set without touching
// the store. Amount fields are coerced, falling back to zero.
func (s *cashService) UpdateCashField(ctx context.Context, id int64, req dto.UpdateCashRequest) error {
	field, ok := domain.ParseCashField(req.Field)
	if !ok {
		return fmt.Errorf("%w: invalid cash field %q", apperrors.ErrValidation, req.Field)
	}

	var value string
	switch {
	case field.IsNumeric():
		value = coerceAmount(req.Value).String()
	case field == domain.CashDate:
		value = coerceText(req.Value)
		if _, err := time.Parse(dateLayout, value); err != nil {
			return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
		}
	default:
		value = coerceText(req.Value)
	}

	if err := s.cashRepo.UpdateCashField(ctx, id, field, value); err != nil {
		s.LogError(ctx, err, "Failed to update cash record",
			slog.Int64("id", id),
			slog.String("field", string(field)))
		return err
	}

	s.LogInfo(ctx, "Cash record updated", slog.Int64("id", id), slog.String("field", string(field)))
	return nil
}

func (s *cashService) DeleteCashRecord(ctx context.Context, id int64) error {
	if err := s.cashRepo.DeleteCashRecord(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete cash record", slog.Int64("id", id))
		return err
	}
	s.LogInfo(ctx, "Cash record deleted", slog.Int64("id", id))
	return nil
}
