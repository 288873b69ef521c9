package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/restaurant_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/restaurant_ledger/internal/models"
	"github.com/SscSPs/restaurant_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	ensureSalesDayQuery = `
		INSERT INTO sales_records (date) VALUES ($1)
		ON CONFLICT (date) DO NOTHING;
	`

	// setSalesFieldQuery names every column statically and picks the one to
	// write by comparing $2 against the column name. Amounts bind to $3, the
	// memo binds to $4.
	setSalesFieldQuery = `
		UPDATE sales_records SET
			cash      = CASE WHEN $2 = 'cash'      THEN $3::numeric ELSE cash END,
			debit     = CASE WHEN $2 = 'debit'     THEN $3::numeric ELSE debit END,
			credit    = CASE WHEN $2 = 'credit'    THEN $3::numeric ELSE credit END,
			svc       = CASE WHEN $2 = 'svc'       THEN $3::numeric ELSE svc END,
			tips      = CASE WHEN $2 = 'tips'      THEN $3::numeric ELSE tips END,
			tax       = CASE WHEN $2 = 'tax'       THEN $3::numeric ELSE tax END,
			cash_tips = CASE WHEN $2 = 'cash_tips' THEN $3::numeric ELSE cash_tips END,
			doordash  = CASE WHEN $2 = 'doordash'  THEN $3::numeric ELSE doordash END,
			stripe    = CASE WHEN $2 = 'stripe'    THEN $3::numeric ELSE stripe END,
			memo      = CASE WHEN $2 = 'memo'      THEN $4::text    ELSE memo END
		WHERE date = $1;
	`
)

// recomputeSalesTotalQuery sums the same columns SalesRecord.CalculateTotal does.
var recomputeSalesTotalQuery = func() string {
	cols := make([]string, len(domain.RevenueFields))
	for i, f := range domain.RevenueFields {
		cols[i] = string(f)
	}
	return fmt.Sprintf(`
		UPDATE sales_records
		SET total = %s
		WHERE date = $1;`, strings.Join(cols, " + "))
}()

// PgxSalesRepository stores one sales record per calendar day.
type PgxSalesRepository struct {
	BaseRepository
}

func newPgxSalesRepository(pool *pgxpool.Pool) portsrepo.SalesRepositoryFacade {
	return &PgxSalesRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalesRepositoryFacade = (*PgxSalesRepository)(nil)

func (r *PgxSalesRepository) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	query := `
		SELECT id, date, cash, debit, credit, svc, tips, tax, cash_tips, doordash, stripe, total, memo
		FROM sales_records
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales records: %w", err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SalesRecord, error) {
		var m models.SalesRecord
		err := row.Scan(
			&m.ID,
			&m.Date,
			&m.Cash,
			&m.Debit,
			&m.Credit,
			&m.Svc,
			&m.Tips,
			&m.Tax,
			&m.CashTips,
			&m.Doordash,
			&m.Stripe,
			&m.Total,
			&m.Memo,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales records: %w", err)
	}
	return mapping.ToDomainSalesRecordSlice(records), nil
}

// UpsertSalesField creates the day if needed, sets one field and recomputes
// the total in a single transaction. The field update locks the row, so
// concurrent writers to the same day queue behind each other and the last
// recompute sees every field.
func (r *PgxSalesRepository) UpsertSalesField(ctx context.Context, date string, field domain.SalesField, value string) error {
	if _, ok := domain.ParseSalesField(string(field)); !ok {
		return fmt.Errorf("%w: invalid sales field %q", apperrors.ErrValidation, field)
	}

	var amount decimal.NullDecimal
	var memo *string
	if field.IsNumeric() {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", apperrors.ErrValidation, field)
		}
		amount = decimal.NullDecimal{Decimal: d, Valid: true}
	} else {
		memo = &value
	}

	err := pgx.BeginFunc(ctx, r.Pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, ensureSalesDayQuery, date); err != nil {
			return fmt.Errorf("failed to create sales day %s: %w", date, err)
		}
		if _, err := tx.Exec(ctx, setSalesFieldQuery, date, string(field), amount, memo); err != nil {
			return fmt.Errorf("failed to set %s for %s: %w", field, date, err)
		}
		if _, err := tx.Exec(ctx, recomputeSalesTotalQuery, date); err != nil {
			return fmt.Errorf("failed to recompute total for %s: %w", date, err)
		}
		return nil
	})
	return err
}

func (r *PgxSalesRepository) DeleteSalesRecord(ctx context.Context, date string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM sales_records WHERE date = $1;`, date)
	if err != nil {
		return fmt.Errorf("failed to delete sales record %s: %w", date, err)
	}
	return expectAffected(tag, "sales record %s", date)
}
