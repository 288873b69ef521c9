package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Sink persists extracted rows one at a time. The bool result reports whether
// the row was new; duplicates return false without an error.
type Sink interface {
	SaveLedgerRow(ctx context.Context, table domain.LedgerTable, row domain.LedgerRow) (bool, error)
	SaveInvoiceItem(ctx context.Context, item domain.InvoiceItem) (bool, error)
}

// Options carries the per-upload context extractors need.
type Options struct {
	Filename    string
	InvoiceYear int
	Now         time.Time
}

// FormatID names a known export layout.
type FormatID string

const (
	VendorInvoice FormatID = "vendor_invoice"
	BankLedger    FormatID = "bank_ledger"
	CreditCardA   FormatID = "credit_card_a"
	CreditCardB   FormatID = "credit_card_b"
)

// Format describes one known export: how to recognise it by its columns, the
// tab it belongs on and how to turn its rows into ledger entries.
type Format struct {
	ID       FormatID
	Name     string
	Tab      domain.Tab
	Required []string
	Matches  func(t *Table) bool
	extract  func(ctx context.Context, t *Table, opts Options, sink Sink) (int, error)
}

// Formats is evaluated top to bottom and the first match wins, so an export
// carrying several signatures is classified by the earliest one.
var Formats = []Format{
	{
		ID:   VendorInvoice,
		Name: "US Foods invoice",
		Tab:  domain.TabInvoice,
		Matches: func(t *Table) bool {
			return t.HasColumn("ProductDescription") && t.HasColumn("ExtendedPrice")
		},
		extract: extractVendorInvoice,
	},
	{
		ID:       BankLedger,
		Name:     "Truist bank statement",
		Tab:      domain.TabLedger,
		Required: []string{"Transaction Date", "Amount"},
		Matches: func(t *Table) bool {
			return t.HasColumn("Posted Date") && t.HasColumn("Full description")
		},
		extract: extractBankLedger,
	},
	{
		ID:       CreditCardA,
		Name:     "Chase credit card statement",
		Tab:      domain.TabCreditCard,
		Required: []string{"Transaction Date"},
		Matches: func(t *Table) bool {
			return t.HasColumn("Card") || (t.HasColumn("Transaction Date") && t.HasColumn("Post Date"))
		},
		extract: extractCreditCardA,
	},
	{
		ID:       CreditCardB,
		Name:     "Citi credit card statement",
		Tab:      domain.TabCreditCard,
		Required: []string{"Date"},
		Matches: func(t *Table) bool {
			return t.HasColumn("Status") && t.HasColumn("Debit") && t.HasColumn("Credit")
		},
		extract: extractCreditCardB,
	},
}

// Classify returns the first format whose signature matches the table.
func Classify(t *Table, filename string) (*Format, error) {
	for i := range Formats {
		if Formats[i].Matches(t) {
			return &Formats[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownFormat, filename)
}

// Route classifies the table and checks it against the caller's tab hint.
// An empty hint accepts any recognised format.
func Route(t *Table, filename string, hint domain.Tab) (*Format, error) {
	f, err := Classify(t, filename)
	if err != nil {
		return nil, err
	}
	if hint != "" && hint != f.Tab {
		return nil, &apperrors.TabMismatchError{Format: f.Name, Expected: string(f.Tab)}
	}
	return f, nil
}

// Extract checks the format's required columns and streams every extracted
// row into sink. It returns the number of new rows. Rows saved before an
// error stay saved.
func (f *Format) Extract(ctx context.Context, t *Table, opts Options, sink Sink) (int, error) {
	for _, col := range f.Required {
		if !t.HasColumn(col) {
			return 0, fmt.Errorf("%w: %s is missing required column %q", apperrors.ErrParse, f.Name, col)
		}
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.InvoiceYear == 0 {
		opts.InvoiceYear = opts.Now.Year()
	}
	return f.extract(ctx, t, opts, sink)
}

func extractVendorInvoice(ctx context.Context, t *Table, opts Options, sink Sink) (int, error) {
	date := DateFromFilename(opts.Filename, opts.InvoiceYear, opts.Now)
	saved := 0
	for _, row := range t.Rows {
		name, ok := row.Get("ProductDescription")
		if !ok {
			continue
		}
		item := domain.InvoiceItem{
			Date:        date,
			Vendor:      "US Foods",
			ProductCode: row.Value("ProductNumber"),
			ProductName: name,
			Quantity:    ParseNumber(row.Value("QtyShip")),
			Unit:        row.Value("PricingUnit"),
			UnitPrice:   ParseNumber(row.Value("UnitPrice")),
			TotalPrice:  ParseNumber(row.Value("ExtendedPrice")),
		}
		item.DedupKey = domain.InvoiceDedupKey(item.Date, item.ProductCode, item.TotalPrice)

		inserted, err := sink.SaveInvoiceItem(ctx, item)
		if err != nil {
			return saved, err
		}
		if inserted {
			saved++
		}
	}
	return saved, nil
}

// splitSigned turns a signed amount into its income and expense parts.
func splitSigned(amount decimal.Decimal) (income, expense decimal.Decimal) {
	if amount.IsPositive() {
		return amount, decimal.Zero
	}
	return decimal.Zero, amount.Abs()
}

func extractBankLedger(ctx context.Context, t *Table, opts Options, sink Sink) (int, error) {
	return saveLedgerRows(ctx, t, domain.BankLedger, sink, func(row Row) domain.LedgerRow {
		income, expense := splitSigned(CleanCurrency(row.Value("Amount")))
		return domain.NewLedgerRow(
			NormalizeDate(row.Value("Transaction Date"), opts.Now),
			row.Value("Transaction Type"),
			row.Value("Full description"),
			income, expense,
			CleanCurrency(row.Value("Daily Posted Balance")),
			"Main Bank (Truist)",
		)
	})
}

func extractCreditCardA(ctx context.Context, t *Table, opts Options, sink Sink) (int, error) {
	return saveLedgerRows(ctx, t, domain.CreditCardLedger, sink, func(row Row) domain.LedgerRow {
		income, expense := splitSigned(ParseNumber(row.Value("Amount")))
		return domain.NewLedgerRow(
			NormalizeDate(row.Value("Transaction Date"), opts.Now),
			row.Value("Type"),
			row.Value("Description"),
			income, expense,
			decimal.Zero,
			"Chase CC",
		)
	})
}

func extractCreditCardB(ctx context.Context, t *Table, opts Options, sink Sink) (int, error) {
	return saveLedgerRows(ctx, t, domain.CreditCardLedger, sink, func(row Row) domain.LedgerRow {
		return domain.NewLedgerRow(
			NormalizeDate(row.Value("Date"), opts.Now),
			"Credit Card",
			row.Value("Description"),
			CleanCurrency(row.Value("Credit")),
			CleanCurrency(row.Value("Debit")),
			decimal.Zero,
			"Citi CC",
		)
	})
}

func saveLedgerRows(ctx context.Context, t *Table, table domain.LedgerTable, sink Sink, build func(Row) domain.LedgerRow) (int, error) {
	saved := 0
	for _, row := range t.Rows {
		inserted, err := sink.SaveLedgerRow(ctx, table, build(row))
		if err != nil {
			return saved, err
		}
		if inserted {
			saved++
		}
	}
	return saved, nil
}
