package mapping

import (
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/SscSPs/restaurant_ledger/internal/models"
)

// ToDomainSalesRecord converts a model SalesRecord to a domain SalesRecord
func ToDomainSalesRecord(m models.SalesRecord) domain.SalesRecord {
	return domain.SalesRecord{
		ID:       m.ID,
		Date:     m.Date,
		Cash:     amount(m.Cash),
		Debit:    amount(m.Debit),
		Credit:   amount(m.Credit),
		Svc:      amount(m.Svc),
		Tips:     amount(m.Tips),
		Tax:      amount(m.Tax),
		CashTips: amount(m.CashTips),
		Doordash: amount(m.Doordash),
		Stripe:   amount(m.Stripe),
		Total:    amount(m.Total),
		Memo:     text(m.Memo),
	}
}

// ToDomainSalesRecordSlice converts a slice of model SalesRecords to a slice of domain SalesRecords
func ToDomainSalesRecordSlice(ms []models.SalesRecord) []domain.SalesRecord {
	ds := make([]domain.SalesRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalesRecord(m)
	}
	return ds
}
