package mapping

import (
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/SscSPs/restaurant_ledger/internal/models"
)

// ToModelLedgerRow converts a domain LedgerRow to a model LedgerRow
func ToModelLedgerRow(d domain.LedgerRow) models.LedgerRow {
	return models.LedgerRow{
		ID:            d.ID,
		Date:          d.Date,
		Type:          nullText(d.Type),
		Category:      nullText(d.Category),
		Payee:         nullText(d.Payee),
		PayeeNote:     nullText(d.PayeeNote),
		CashAmount:    nullAmount(d.CashAmount),
		Description:   nullText(d.Description),
		Income:        nullAmount(d.Income),
		Expense:       nullAmount(d.Expense),
		NetAmount:     nullAmount(d.NetAmount),
		BankBalance:   nullAmount(d.BankBalance),
		AccountSource: nullText(d.AccountSource),
		DedupKey:      d.DedupKey,
	}
}

// ToDomainLedgerRow converts a model LedgerRow to a domain LedgerRow
func ToDomainLedgerRow(m models.LedgerRow) domain.LedgerRow {
	return domain.LedgerRow{
		ID:            m.ID,
		Date:          m.Date,
		Type:          text(m.Type),
		Category:      text(m.Category),
		Payee:         text(m.Payee),
		PayeeNote:     text(m.PayeeNote),
		CashAmount:    amount(m.CashAmount),
		Description:   text(m.Description),
		Income:        amount(m.Income),
		Expense:       amount(m.Expense),
		NetAmount:     amount(m.NetAmount),
		BankBalance:   amount(m.BankBalance),
		AccountSource: text(m.AccountSource),
		DedupKey:      m.DedupKey,
	}
}

// ToDomainLedgerRowSlice converts a slice of model LedgerRows to a slice of domain LedgerRows
func ToDomainLedgerRowSlice(ms []models.LedgerRow) []domain.LedgerRow {
	ds := make([]domain.LedgerRow, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerRow(m)
	}
	return ds
}
