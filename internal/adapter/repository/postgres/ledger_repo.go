package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/usecase"
)

// LedgerRepository implements usecase.LedgerRepository. Breakdowns are upserted
// keyed by entity ID; commission lines are replaced wholesale so the stored set
// always mirrors the last balanced save.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const upsertBookingFinanceSQL = `
INSERT INTO booking_finances (
	booking_id, package_category, package_name, package_amount,
	photographer_expenses, videographer_expenses, editor_expenses,
	company_expenses, other_expenses, final_amount, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (booking_id) DO UPDATE SET
	package_category = EXCLUDED.package_category,
	package_name = EXCLUDED.package_name,
	package_amount = EXCLUDED.package_amount,
	photographer_expenses = EXCLUDED.photographer_expenses,
	videographer_expenses = EXCLUDED.videographer_expenses,
	editor_expenses = EXCLUDED.editor_expenses,
	company_expenses = EXCLUDED.company_expenses,
	other_expenses = EXCLUDED.other_expenses,
	final_amount = EXCLUDED.final_amount,
	updated_at = EXCLUDED.updated_at`

// SaveBookingFinance upserts a booking breakdown inside tx.
func (r *LedgerRepository) SaveBookingFinance(ctx context.Context, tx usecase.Transaction, bookingID string, fin *domain.BookingFinance) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, upsertBookingFinanceSQL,
		bookingID,
		fin.PackageCategory,
		fin.PackageName,
		decimalToNumeric(fin.PackageAmount),
		decimalToNumeric(fin.PhotographerExpenses),
		decimalToNumeric(fin.VideographerExpenses),
		decimalToNumeric(fin.EditorExpenses),
		decimalToNumeric(fin.CompanyExpenses),
		decimalToNumeric(fin.OtherExpenses),
		decimalToNumeric(fin.FinalAmount),
		timeToPgTimestamptz(fin.UpdatedAt),
	)
	return err
}

const upsertOrderFinanceSQL = `
INSERT INTO order_finances (
	order_id, order_amount, studio_fee, other_expenses, profit, updated_at
) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (order_id) DO UPDATE SET
	order_amount = EXCLUDED.order_amount,
	studio_fee = EXCLUDED.studio_fee,
	other_expenses = EXCLUDED.other_expenses,
	profit = EXCLUDED.profit,
	updated_at = EXCLUDED.updated_at`

// SaveOrderFinance upserts a product-order breakdown inside tx.
func (r *LedgerRepository) SaveOrderFinance(ctx context.Context, tx usecase.Transaction, orderID string, fin *domain.OrderFinance) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, upsertOrderFinanceSQL,
		orderID,
		decimalToNumeric(fin.OrderAmount),
		decimalToNumeric(fin.StudioFee),
		decimalToNumeric(fin.OtherExpenses),
		decimalToNumeric(fin.Profit),
		timeToPgTimestamptz(fin.UpdatedAt),
	)
	return err
}

const insertCommissionLineSQL = `
INSERT INTO commission_lines (entity_id, position, staff_name, amount)
VALUES ($1, $2, $3, $4)`

// ReplaceCommissionLines deletes and re-inserts an entity's commission lines
// inside tx. Position preserves the reconciled ordering across reads.
func (r *LedgerRepository) ReplaceCommissionLines(ctx context.Context, tx usecase.Transaction, entityID string, lines []domain.CommissionLine) error {
	pgxTx := tx.(*Tx).PgxTx()

	if _, err := pgxTx.Exec(ctx, `DELETE FROM commission_lines WHERE entity_id = $1`, entityID); err != nil {
		return err
	}

	for i, line := range lines {
		if _, err := pgxTx.Exec(ctx, insertCommissionLineSQL,
			entityID, i, line.StaffName, decimalToNumeric(line.Amount)); err != nil {
			return err
		}
	}
	return nil
}

const selectCommissionLinesSQL = `
SELECT entity_id, staff_name, amount
FROM commission_lines
WHERE entity_id = ANY($1)
ORDER BY entity_id, position`

// loadCommissionLines batch-loads commission lines for the given entities,
// keyed by entity ID and ordered by stored position.
func loadCommissionLines(ctx context.Context, pool *pgxpool.Pool, entityIDs []string) (map[string][]domain.CommissionLine, error) {
	rows, err := pool.Query(ctx, selectCommissionLinesSQL, entityIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[string][]domain.CommissionLine)
	for rows.Next() {
		var (
			entityID  string
			staffName string
			amount    pgtype.Numeric
		)
		if err := rows.Scan(&entityID, &staffName, &amount); err != nil {
			return nil, err
		}
		lines[entityID] = append(lines[entityID], domain.CommissionLine{
			StaffName: staffName,
			Amount:    numericToDecimal(amount),
		})
	}
	return lines, rows.Err()
}
