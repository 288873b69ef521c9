package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/restaurant_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/restaurant_ledger/internal/models"
	"github.com/SscSPs/restaurant_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerQueries holds the statements for one ledger table.
type ledgerQueries struct {
	insert   string
	list     string
	annotate string
}

// ledgerQuerySet is built once from the closed table enum; table names never
// come from request input.
var ledgerQuerySet = func() map[domain.LedgerTable]ledgerQueries {
	set := make(map[domain.LedgerTable]ledgerQueries, len(domain.LedgerTables))
	for _, table := range domain.LedgerTables {
		set[table] = ledgerQueries{
			insert: fmt.Sprintf(`
				INSERT INTO %s (date, type, description, income, expense, net_amount, bank_balance, account_source, dedup_key)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				ON CONFLICT (dedup_key) DO NOTHING;`, table),
			list: fmt.Sprintf(`
				SELECT id, date, type, category, payee, payee_note, cash_amount, description,
					income, expense, net_amount, bank_balance, account_source, dedup_key
				FROM %s
				ORDER BY date DESC, id DESC;`, table),
			annotate: fmt.Sprintf(`
				UPDATE %s SET
					category = COALESCE($2, category),
					payee = COALESCE($3, payee),
					payee_note = COALESCE($4, payee_note),
					cash_amount = COALESCE($5, cash_amount)
				WHERE id = $1;`, table),
		}
	}
	return set
}()

// PgxLedgerRepository stores bank and credit-card statement lines.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func queriesFor(table domain.LedgerTable) (ledgerQueries, error) {
	q, ok := ledgerQuerySet[table]
	if !ok {
		return ledgerQueries{}, fmt.Errorf("%w: unknown ledger table %q", apperrors.ErrValidation, table)
	}
	return q, nil
}

// InsertLedgerRow inserts a row, skipping it silently when its dedup key exists.
func (r *PgxLedgerRepository) InsertLedgerRow(ctx context.Context, table domain.LedgerTable, row domain.LedgerRow) (bool, error) {
	q, err := queriesFor(table)
	if err != nil {
		return false, err
	}
	m := mapping.ToModelLedgerRow(row)

	tag, err := r.Pool.Exec(ctx, q.insert,
		m.Date,
		m.Type,
		m.Description,
		m.Income,
		m.Expense,
		m.NetAmount,
		m.BankBalance,
		m.AccountSource,
		m.DedupKey,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert row into %s: %w", table, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListLedgerRows returns all rows of the table, newest first.
func (r *PgxLedgerRepository) ListLedgerRows(ctx context.Context, table domain.LedgerTable) ([]domain.LedgerRow, error) {
	q, err := queriesFor(table)
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, q.list)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerRow, error) {
		var m models.LedgerRow
		err := row.Scan(
			&m.ID,
			&m.Date,
			&m.Type,
			&m.Category,
			&m.Payee,
			&m.PayeeNote,
			&m.CashAmount,
			&m.Description,
			&m.Income,
			&m.Expense,
			&m.NetAmount,
			&m.BankBalance,
			&m.AccountSource,
			&m.DedupKey,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", table, err)
	}
	return mapping.ToDomainLedgerRowSlice(modelRows), nil
}

// AnnotateLedgerRow writes the supplied annotation fields in one statement.
// Nil fields bind as NULL and keep the stored value.
func (r *PgxLedgerRepository) AnnotateLedgerRow(ctx context.Context, table domain.LedgerTable, id int64, annotation domain.LedgerAnnotation) error {
	q, err := queriesFor(table)
	if err != nil {
		return err
	}

	tag, err := r.Pool.Exec(ctx, q.annotate,
		id,
		annotation.Category,
		annotation.Payee,
		annotation.PayeeNote,
		annotation.CashAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to annotate %s row %d: %w", table, id, err)
	}
	return expectAffected(tag, "%s row %d", table, id)
}
