package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/core/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ledgerRepo  *MockLedgerRepository
	invoiceRepo *MockInvoiceRepository
	service     portssvc.LedgerSvcFacade
	ctx         context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ledgerRepo = new(MockLedgerRepository)
	suite.invoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewLedgerService(suite.ledgerRepo, suite.invoiceRepo)
}

func (suite *LedgerServiceTestSuite) TestListLedgerRows() {
	rows := []domain.LedgerRow{{ID: 2, Date: "2024-01-03"}, {ID: 1, Date: "2024-01-02"}}
	suite.ledgerRepo.On("ListLedgerRows", suite.ctx, domain.CreditCardLedger).Return(rows, nil).Once()

	got, err := suite.service.ListLedgerRows(suite.ctx, domain.CreditCardLedger)

	suite.Require().NoError(err)
	suite.Equal(rows, got)
	suite.ledgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListLedgerRows_StorageErrorDegradesToEmpty() {
	suite.ledgerRepo.On("ListLedgerRows", suite.ctx, domain.BankLedger).Return(nil, errors.New("relation does not exist")).Once()

	got, err := suite.service.ListLedgerRows(suite.ctx, domain.BankLedger)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *LedgerServiceTestSuite) TestListLedgerRows_UnknownTable() {
	_, err := suite.service.ListLedgerRows(suite.ctx, domain.LedgerTable("users"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "ListLedgerRows", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListInvoiceItems_StorageErrorDegradesToEmpty() {
	suite.invoiceRepo.On("ListInvoiceItems", suite.ctx).Return(nil, errors.New("timeout")).Once()

	got, err := suite.service.ListInvoiceItems(suite.ctx)

	suite.Require().NoError(err)
	suite.Empty(got)
}

func (suite *LedgerServiceTestSuite) TestAnnotateLedgerRow() {
	category := "Food Cost"
	cash := decimal.NewFromInt(40)
	req := dto.UpdateLedgerRowRequest{Category: &category, CashAmount: &cash}

	suite.ledgerRepo.On("AnnotateLedgerRow", suite.ctx, domain.BankLedger, int64(7), mock.MatchedBy(func(a domain.LedgerAnnotation) bool {
		return *a.Category == "Food Cost" && a.Payee == nil && a.PayeeNote == nil && a.CashAmount.Equal(cash)
	})).Return(nil).Once()

	err := suite.service.AnnotateLedgerRow(suite.ctx, domain.BankLedger, 7, req)

	suite.Require().NoError(err)
	suite.ledgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAnnotateLedgerRow_EmptyIsNoop() {
	err := suite.service.AnnotateLedgerRow(suite.ctx, domain.BankLedger, 7, dto.UpdateLedgerRowRequest{})

	suite.Require().NoError(err)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "AnnotateLedgerRow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAnnotateLedgerRow_NotFound() {
	payee := "Sysco"
	suite.ledgerRepo.On("AnnotateLedgerRow", suite.ctx, domain.CreditCardLedger, int64(99), mock.Anything).Return(apperrors.ErrNotFound).Once()

	err := suite.service.AnnotateLedgerRow(suite.ctx, domain.CreditCardLedger, 99, dto.UpdateLedgerRowRequest{Payee: &payee})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
