package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/restaurant_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// monthPattern accepts date prefixes such as "2024", "2024-01" or "2024-01-15".
var monthPattern = regexp.MustCompile(`^\d{4}(-\d{2}){0,2}$`)

type dashboardService struct {
	BaseService
	salesRepo  portsrepo.SalesReader
	ledgerRepo portsrepo.LedgerReader
}

// NewDashboardService creates the dashboard aggregate service.
func NewDashboardService(salesRepo portsrepo.SalesReader, ledgerRepo portsrepo.LedgerReader) portssvc.DashboardService {
	return &dashboardService{salesRepo: salesRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

// Summary aggregates sales records and bank transactions. Credit-card rows do
// not take part: card spending reaches the bank ledger when the card is paid.
func (s *dashboardService) Summary(ctx context.Context, month string) (*domain.DashboardSummary, error) {
	month = strings.TrimSpace(month)
	if month != "" && !monthPattern.MatchString(month) {
		return nil, fmt.Errorf("%w: invalid month %q, expected YYYY-MM", apperrors.ErrValidation, month)
	}

	sales, err := s.salesRepo.ListSalesRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales for dashboard", slog.String("month", month))
		sales = nil
	}
	txns, err := s.ledgerRepo.ListLedgerRows(ctx, domain.BankLedger)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for dashboard", slog.String("month", month))
		txns = nil
	}

	summary := &domain.DashboardSummary{}
	cashIn := decimal.Zero
	for _, r := range sales {
		if !strings.HasPrefix(r.Date, month) {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(r.Total)
		b := &summary.SalesBreakdown
		b.Cash = b.Cash.Add(r.Cash)
		b.Debit = b.Debit.Add(r.Debit)
		b.Credit = b.Credit.Add(r.Credit)
		b.Doordash = b.Doordash.Add(r.Doordash)
		b.Stripe = b.Stripe.Add(r.Stripe)
		b.Tips = b.Tips.Add(r.Tips)
		b.CashTips = b.CashTips.Add(r.CashTips)
		cashIn = cashIn.Add(r.Cash).Add(r.CashTips)
	}

	cashOut := decimal.Zero
	for _, t := range txns {
		if !strings.HasPrefix(t.Date, month) {
			continue
		}
		if t.Expense.IsPositive() {
			summary.TotalExpense = summary.TotalExpense.Add(t.Expense)
		}
		cashOut = cashOut.Add(t.CashAmount)
	}

	summary.NetProfit = summary.TotalRevenue.Sub(summary.TotalExpense)
	summary.CurrentCash = cashIn.Sub(cashOut)

	s.LogDebug(ctx, "Dashboard summary computed",
		slog.String("month", month),
		slog.Int("sales_days", len(sales)),
		slog.Int("transactions", len(txns)))
	return summary, nil
}
