package mapping

import (
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/SscSPs/restaurant_ledger/internal/models"
)

// ToModelCashRecord converts a domain CashRecord to a model CashRecord
func ToModelCashRecord(d domain.CashRecord) models.CashRecord {
	return models.CashRecord{
		ID:          d.ID,
		Date:        d.Date,
		Category:    nullText(d.Category),
		Payee:       nullText(d.Payee),
		Income:      nullAmount(d.Income),
		Expense:     nullAmount(d.Expense),
		Balance:     nullAmount(d.Balance),
		Description: nullText(d.Description),
	}
}

// ToDomainCashRecord converts a model CashRecord to a domain CashRecord
func ToDomainCashRecord(m models.CashRecord) domain.CashRecord {
	return domain.CashRecord{
		ID:          m.ID,
		Date:        m.Date,
		Category:    text(m.Category),
		Payee:       text(m.Payee),
		Income:      amount(m.Income),
		Expense:     amount(m.Expense),
		Balance:     amount(m.Balance),
		Description: text(m.Description),
	}
}

// ToDomainCashRecordSlice converts a slice of model CashRecords to a slice of domain CashRecords
func ToDomainCashRecordSlice(ms []models.CashRecord) []domain.CashRecord {
	ds := make([]domain.CashRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashRecord(m)
	}
	return ds
}
