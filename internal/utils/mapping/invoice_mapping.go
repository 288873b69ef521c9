package mapping

import (
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/SscSPs/restaurant_ledger/internal/models"
)

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ID:          d.ID,
		Date:        d.Date,
		Vendor:      nullText(d.Vendor),
		ProductCode: nullText(d.ProductCode),
		ProductName: nullText(d.ProductName),
		Quantity:    nullAmount(d.Quantity),
		Unit:        nullText(d.Unit),
		UnitPrice:   nullAmount(d.UnitPrice),
		TotalPrice:  nullAmount(d.TotalPrice),
		DedupKey:    d.DedupKey,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ID:          m.ID,
		Date:        m.Date,
		Vendor:      text(m.Vendor),
		ProductCode: text(m.ProductCode),
		ProductName: text(m.ProductName),
		Quantity:    amount(m.Quantity),
		Unit:        text(m.Unit),
		UnitPrice:   amount(m.UnitPrice),
		TotalPrice:  amount(m.TotalPrice),
		DedupKey:    m.DedupKey,
	}
}

// ToDomainInvoiceItemSlice converts a slice of model InvoiceItems to a slice of domain InvoiceItems
func ToDomainInvoiceItemSlice(ms []models.InvoiceItem) []domain.InvoiceItem {
	ds := make([]domain.InvoiceItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceItem(m)
	}
	return ds
}
