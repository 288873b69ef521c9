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
	"github.com/shopspring/decimal"
)

// updateCashFieldQueries has one literal statement per editable column.
var updateCashFieldQueries = map[domain.CashField]string{
	domain.CashDate:        `UPDATE cash_records SET date = $2 WHERE id = $1;`,
	domain.CashCategory:    `UPDATE cash_records SET category = $2 WHERE id = $1;`,
	domain.CashPayee:       `UPDATE cash_records SET payee = $2 WHERE id = $1;`,
	domain.CashIncome:      `UPDATE cash_records SET income = $2 WHERE id = $1;`,
	domain.CashExpense:     `UPDATE cash_records SET expense = $2 WHERE id = $1;`,
	domain.CashBalance:     `UPDATE cash_records SET balance = $2 WHERE id = $1;`,
	domain.CashDescription: `UPDATE cash_records SET description = $2 WHERE id = $1;`,
}

// PgxCashRepository stores manually entered cash records.
type PgxCashRepository struct {
	BaseRepository
}

func newPgxCashRepository(pool *pgxpool.Pool) portsrepo.CashRepositoryFacade {
	return &PgxCashRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashRepositoryFacade = (*PgxCashRepository)(nil)

func (r *PgxCashRepository) ListCashRecords(ctx context.Context) ([]domain.CashRecord, error) {
	query := `
		SELECT id, date, category, payee, income, expense, balance, description
		FROM cash_records
		ORDER BY date DESC, id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash records: %w", err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CashRecord, error) {
		var m models.CashRecord
		err := row.Scan(
			&m.ID,
			&m.Date,
			&m.Category,
			&m.Payee,
			&m.Income,
			&m.Expense,
			&m.Balance,
			&m.Description,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cash records: %w", err)
	}
	return mapping.ToDomainCashRecordSlice(records), nil
}

func (r *PgxCashRepository) SaveCashRecord(ctx context.Context, record domain.CashRecord) (int64, error) {
	query := `
		INSERT INTO cash_records (date, category, payee, income, expense, balance, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	m := mapping.ToModelCashRecord(record)

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Date,
		m.Category,
		m.Payee,
		m.Income,
		m.Expense,
		m.Balance,
		m.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save cash record: %w", err)
	}
	return id, nil
}

// UpdateCashField sets a single column. Fields outside the editable set are
// rejected before any statement is sent.
func (r *PgxCashRepository) UpdateCashField(ctx context.Context, id int64, field domain.CashField, value string) error {
	query, ok := updateCashFieldQueries[field]
	if !ok {
		return fmt.Errorf("%w: invalid cash field %q", apperrors.ErrValidation, field)
	}

	var arg any = value
	if field.IsNumeric() {
		d, err := decimal.NewFromString(value)
		if err != nil {
			d = decimal.Zero
		}
		arg = d
	}

	tag, err := r.Pool.Exec(ctx, query, id, arg)
	if err != nil {
		return fmt.Errorf("failed to update %s of cash record %d: %w", field, id, err)
	}
	return expectAffected(tag, "cash record %d", id)
}

func (r *PgxCashRepository) DeleteCashRecord(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cash_records WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cash record %d: %w", id, err)
	}
	return expectAffected(tag, "cash record %d", id)
}
