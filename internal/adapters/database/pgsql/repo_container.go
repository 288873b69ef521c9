package pgsql

import (
	portsrepo "github.com/SscSPs/restaurant_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository onto the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:  newPgxLedgerRepository(dbPool),
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
		SalesRepo:   newPgxSalesRepository(dbPool),
		CashRepo:    newPgxCashRepository(dbPool),
	}
}
