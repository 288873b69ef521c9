package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/restaurant_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/restaurant_ledger/internal/models"
	"github.com/SscSPs/restaurant_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxInvoiceRepository stores vendor invoice lines.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func (r *PgxInvoiceRepository) InsertInvoiceItem(ctx context.Context, item domain.InvoiceItem) (bool, error) {
	query := `
		INSERT INTO invoice_items (date, vendor, product_code, product_name, quantity, unit, unit_price, total_price, dedup_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (dedup_key) DO NOTHING;
	`
	m := mapping.ToModelInvoiceItem(item)

	tag, err := r.Pool.Exec(ctx, query,
		m.Date,
		m.Vendor,
		m.ProductCode,
		m.ProductName,
		m.Quantity,
		m.Unit,
		m.UnitPrice,
		m.TotalPrice,
		m.DedupKey,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert invoice item %s: %w", item.DedupKey, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxInvoiceRepository) ListInvoiceItems(ctx context.Context) ([]domain.InvoiceItem, error) {
	query := `
		SELECT id, date, vendor, product_code, product_name, quantity, unit, unit_price, total_price, dedup_key
		FROM invoice_items
		ORDER BY date DESC, id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice items: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceItem, error) {
		var m models.InvoiceItem
		err := row.Scan(
			&m.ID,
			&m.Date,
			&m.Vendor,
			&m.ProductCode,
			&m.ProductName,
			&m.Quantity,
			&m.Unit,
			&m.UnitPrice,
			&m.TotalPrice,
			&m.DedupKey,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice items: %w", err)
	}
	return mapping.ToDomainInvoiceItemSlice(items), nil
}
