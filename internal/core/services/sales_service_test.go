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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SalesServiceTestSuite struct {
	suite.Suite
	repo    *MockSalesRepository
	service portssvc.SalesSvcFacade
	ctx     context.Context
}

func (suite *SalesServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = new(MockSalesRepository)
	suite.service = services.NewSalesService(suite.repo)
}

func (suite *SalesServiceTestSuite) TestUpdateSalesField_Amounts() {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"json number", 120.5, "120.5"},
		{"currency string", "$1,200.00", "1200"},
		{"garbage string", "lots", "0"},
		{"null", nil, "0"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.repo.On("UpsertSalesField", suite.ctx, "2024-01-15", domain.SalesCash, tt.want).Return(nil).Once()

			err := suite.service.UpdateSalesField(suite.ctx, dto.UpdateSalesRequest{Date: "2024-01-15", Field: "cash", Value: tt.value})

			suite.Require().NoError(err)
		})
	}
	suite.repo.AssertExpectations(suite.T())
}

func (suite *SalesServiceTestSuite) TestUpdateSalesField_MemoIsText() {
	suite.repo.On("UpsertSalesField", suite.ctx, "2024-01-15", domain.SalesMemo, "catering order").Return(nil).Once()

	err := suite.service.UpdateSalesField(suite.ctx, dto.UpdateSalesRequest{Date: "2024-01-15", Field: "memo", Value: "catering order"})

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *SalesServiceTestSuite) TestUpdateSalesField_RejectsUnknownFieldWithoutQuery() {
	for _, field := range []string{"total", "id", "cash; DROP TABLE sales_records", ""} {
		err := suite.service.UpdateSalesField(suite.ctx, dto.UpdateSalesRequest{Date: "2024-01-15", Field: field, Value: 1})
		suite.ErrorIs(err, apperrors.ErrValidation, field)
	}
	suite.repo.AssertNotCalled(suite.T(), "UpsertSalesField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SalesServiceTestSuite) TestUpdateSalesField_RejectsBadDate() {
	err := suite.service.UpdateSalesField(suite.ctx, dto.UpdateSalesRequest{Date: "01/15/2024", Field: "cash", Value: 1})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "UpsertSalesField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SalesServiceTestSuite) TestUpdateSalesField_StorageError() {
	dbErr := errors.New("deadlock detected")
	suite.repo.On("UpsertSalesField", suite.ctx, "2024-01-15", domain.SalesTips, "3").Return(dbErr).Once()

	err := suite.service.UpdateSalesField(suite.ctx, dto.UpdateSalesRequest{Date: "2024-01-15", Field: "tips", Value: float64(3)})

	suite.ErrorIs(err, dbErr)
}

func (suite *SalesServiceTestSuite) TestListSalesRecords_StorageErrorDegradesToEmpty() {
	suite.repo.On("ListSalesRecords", suite.ctx).Return(nil, errors.New("down")).Once()

	got, err := suite.service.ListSalesRecords(suite.ctx)

	suite.Require().NoError(err)
	suite.Empty(got)
}

func (suite *SalesServiceTestSuite) TestDeleteSalesRecord() {
	suite.repo.On("DeleteSalesRecord", suite.ctx, "2024-01-15").Return(nil).Once()
	suite.repo.On("DeleteSalesRecord", suite.ctx, "2024-01-16").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteSalesRecord(suite.ctx, "2024-01-15"))
	suite.ErrorIs(suite.service.DeleteSalesRecord(suite.ctx, "2024-01-16"), apperrors.ErrNotFound)
	suite.repo.AssertExpectations(suite.T())
}

func TestSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesServiceTestSuite))
}
