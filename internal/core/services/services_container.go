package services

import (
	portsrepo "github.com/SscSPs/restaurant_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ingest:    NewIngestService(repos.LedgerRepo, repos.InvoiceRepo, WithInvoiceYear(cfg.InvoiceYear)),
		Ledger:    NewLedgerService(repos.LedgerRepo, repos.InvoiceRepo),
		Sales:     NewSalesService(repos.SalesRepo),
		Cash:      NewCashService(repos.CashRepo),
		Dashboard: NewDashboardService(repos.SalesRepo, repos.LedgerRepo),
	}
}
