package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/core/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CashServiceTestSuite struct {
	suite.Suite
	repo    *MockCashRepository
	service portssvc.CashSvcFacade
	ctx     context.Context
}

func (suite *CashServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = new(MockCashRepository)
	suite.service = services.NewCashService(suite.repo,
		services.WithCashClock(func() time.Time { return time.Date(2025, 2, 3, 18, 30, 0, 0, time.UTC) }),
	)
}

func (suite *CashServiceTestSuite) TestCreateCashRecord_DefaultsToToday() {
	suite.repo.On("SaveCashRecord", suite.ctx, mock.MatchedBy(func(r domain.CashRecord) bool {
		return r.Date == "2025-02-03" && r.Income.IsZero() && r.Category == ""
	})).Return(int64(12), nil).Once()

	id, err := suite.service.CreateCashRecord(suite.ctx, dto.CreateCashRequest{})

	suite.Require().NoError(err)
	suite.Equal(int64(12), id)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CashServiceTestSuite) TestCreateCashRecord_WithBody() {
	req := dto.CreateCashRequest{Date: "2025-01-31", Category: "Tips Payout", Expense: decimal.NewFromInt(80)}
	suite.repo.On("SaveCashRecord", suite.ctx, mock.MatchedBy(func(r domain.CashRecord) bool {
		return r.Date == "2025-01-31" && r.Category == "Tips Payout" && r.Expense.Equal(decimal.NewFromInt(80))
	})).Return(int64(13), nil).Once()

	id, err := suite.service.CreateCashRecord(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(13), id)
}

func (suite *CashServiceTestSuite) TestUpdateCashField() {
	tests := []struct {
		field string
		value any
		want  string
		typed domain.CashField
	}{
		{"income", "12.50", "12.5", domain.CashIncome},
		{"expense", "abc", "0", domain.CashExpense},
		{"balance", 300.0, "300", domain.CashBalance},
		{"payee", "Farmers Market", "Farmers Market", domain.CashPayee},
		{"date", "2025-01-30", "2025-01-30", domain.CashDate},
	}

	for _, tt := range tests {
		suite.Run(tt.field, func() {
			suite.repo.On("UpdateCashField", suite.ctx, int64(4), tt.typed, tt.want).Return(nil).Once()

			err := suite.service.UpdateCashField(suite.ctx, 4, dto.UpdateCashRequest{Field: tt.field, Value: tt.value})

			suite.Require().NoError(err)
		})
	}
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CashServiceTestSuite) TestUpdateCashField_RejectsUnknownFieldWithoutQuery() {
	for _, field := range []string{"id", "dedup_key", "income = 0 --"} {
		err := suite.service.UpdateCashField(suite.ctx, 4, dto.UpdateCashRequest{Field: field, Value: "x"})
		suite.ErrorIs(err, apperrors.ErrValidation, field)
	}
	suite.repo.AssertNotCalled(suite.T(), "UpdateCashField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashServiceTestSuite) TestUpdateCashField_RejectsBadDate() {
	err := suite.service.UpdateCashField(suite.ctx, 4, dto.UpdateCashRequest{Field: "date", Value: "yesterday"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "UpdateCashField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashServiceTestSuite) TestDeleteCashRecord_NotFound() {
	suite.repo.On("DeleteCashRecord", suite.ctx, int64(404)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCashRecord(suite.ctx, 404)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CashServiceTestSuite) TestListCashRecords() {
	records := []domain.CashRecord{{ID: 2, Date: "2025-02-01"}}
	suite.repo.On("ListCashRecords", suite.ctx).Return(records, nil).Once()

	got, err := suite.service.ListCashRecords(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(records, got)
}

func TestCashServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashServiceTestSuite))
}
