package services

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
)

// SalesSvcFacade defines operations on daily sales records
type SalesSvcFacade interface {
	// ListSalesRecords lists days newest first. Storage failures degrade to an empty list.
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)

	// UpdateSalesField upserts one field of a day and recomputes its total.
	UpdateSalesField(ctx context.Context, req dto.UpdateSalesRequest) error

	// DeleteSalesRecord removes a day.
	DeleteSalesRecord(ctx context.Context, date string) error
}
