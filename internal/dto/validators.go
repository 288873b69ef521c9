package dto

import (
	"time"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("sales_field", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseSalesField(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("cash_field", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseCashField(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	return v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}
