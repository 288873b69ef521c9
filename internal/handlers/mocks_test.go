package handlers_test

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock IngestService ---
type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) ProcessUpload(ctx context.Context, content []byte, filename string, tab domain.Tab) (*domain.UploadResult, error) {
	args := m.Called(ctx, content, filename, tab)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}

var _ portssvc.IngestSvc = (*MockIngestService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListLedgerRows(ctx context.Context, table domain.LedgerTable) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

func (m *MockLedgerService) ListInvoiceItems(ctx context.Context) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockLedgerService) AnnotateLedgerRow(ctx context.Context, table domain.LedgerTable, id int64, req dto.UpdateLedgerRowRequest) error {
	args := m.Called(ctx, table, id, req)
	return args.Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock SalesService ---
type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesRecord), args.Error(1)
}

func (m *MockSalesService) UpdateSalesField(ctx context.Context, req dto.UpdateSalesRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockSalesService) DeleteSalesRecord(ctx context.Context, date string) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

var _ portssvc.SalesSvcFacade = (*MockSalesService)(nil)

// --- Mock CashService ---
type MockCashService struct {
	mock.Mock
}

func (m *MockCashService) ListCashRecords(ctx context.Context) ([]domain.CashRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashRecord), args.Error(1)
}

func (m *MockCashService) CreateCashRecord(ctx context.Context, req dto.CreateCashRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCashService) UpdateCashField(ctx context.Context, id int64, req dto.UpdateCashRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockCashService) DeleteCashRecord(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.CashSvcFacade = (*MockCashService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, month string) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

var _ portssvc.DashboardService = (*MockDashboardService)(nil)
