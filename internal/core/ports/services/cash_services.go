package services

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
)

// CashReaderSvc defines read operations for manual cash records
type CashReaderSvc interface {
	ListCashRecords(ctx context.Context) ([]domain.CashRecord, error)
}

// CashWriterSvc defines write operations for manual cash records
type CashWriterSvc interface {
	// CreateCashRecord stores a record, dated today unless the request has a date.
	CreateCashRecord(ctx context.Context, req dto.CreateCashRequest) (int64, error)

	// UpdateCashField sets a single whitelisted field.
	UpdateCashField(ctx context.Context, id int64, req dto.UpdateCashRequest) error

	DeleteCashRecord(ctx context.Context, id int64) error
}

// CashSvcFacade combines all cash-related service interfaces
type CashSvcFacade interface {
	CashReaderSvc
	CashWriterSvc
}
