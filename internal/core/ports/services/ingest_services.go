package services

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
)

// IngestSvc turns uploaded exports into ledger rows.
type IngestSvc interface {
	// ProcessUpload classifies the file, checks it against the tab hint and
	// saves every extracted row. Classification and parse failures are
	// returned as apperrors values; storage failures are wrapped as-is.
	ProcessUpload(ctx context.Context, content []byte, filename string, tab domain.Tab) (*domain.UploadResult, error)
}
