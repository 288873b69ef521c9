package services_test

import (
	"context"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListLedgerRows(ctx context.Context, table domain.LedgerTable) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

func (m *MockLedgerRepository) InsertLedgerRow(ctx context.Context, table domain.LedgerTable, row domain.LedgerRow) (bool, error) {
	args := m.Called(ctx, table, row)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) AnnotateLedgerRow(ctx context.Context, table domain.LedgerTable, id int64, annotation domain.LedgerAnnotation) error {
	args := m.Called(ctx, table, id, annotation)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) InsertInvoiceItem(ctx context.Context, item domain.InvoiceItem) (bool, error) {
	args := m.Called(ctx, item)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoiceItems(ctx context.Context) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

// MockSalesRepository is a mock type for the SalesRepositoryFacade interface
type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesRecord), args.Error(1)
}

func (m *MockSalesRepository) UpsertSalesField(ctx context.Context, date string, field domain.SalesField, value string) error {
	args := m.Called(ctx, date, field, value)
	return args.Error(0)
}

func (m *MockSalesRepository) DeleteSalesRecord(ctx context.Context, date string) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

// MockCashRepository is a mock type for the CashRepositoryFacade interface
type MockCashRepository struct {
	mock.Mock
}

func (m *MockCashRepository) ListCashRecords(ctx context.Context) ([]domain.CashRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashRecord), args.Error(1)
}

func (m *MockCashRepository) SaveCashRecord(ctx context.Context, record domain.CashRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCashRepository) UpdateCashField(ctx context.Context, id int64, field domain.CashField, value string) error {
	args := m.Called(ctx, id, field, value)
	return args.Error(0)
}

func (m *MockCashRepository) DeleteCashRecord(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
