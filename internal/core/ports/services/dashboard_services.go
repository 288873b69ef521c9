package services

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
)

// DashboardService builds the dashboard aggregate.
type DashboardService interface {
	// Summary aggregates sales and bank transactions whose date starts with
	// month. An empty month aggregates everything.
	Summary(ctx context.Context, month string) (*domain.DashboardSummary, error)
}
