package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/usecase"
)

// ProductOrderRepository implements usecase.ProductOrderRepository.
type ProductOrderRepository struct {
	pool *pgxpool.Pool
}

// NewProductOrderRepository creates a new ProductOrderRepository.
func NewProductOrderRepository(pool *pgxpool.Pool) *ProductOrderRepository {
	return &ProductOrderRepository{pool: pool}
}

const insertOrderSQL = `
INSERT INTO product_orders (id, reference, client_name, order_total, assigned_staff, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create creates a new product order.
func (r *ProductOrderRepository) Create(ctx context.Context, order *domain.ProductOrder) error {
	_, err := r.pool.Exec(ctx, insertOrderSQL,
		order.ID,
		order.Reference,
		order.ClientName,
		decimalToNumeric(order.OrderTotal),
		order.AssignedStaff,
		timeToPgTimestamptz(order.CreatedAt),
		timeToPgTimestamptz(order.UpdatedAt),
	)
	return err
}

const selectOrderSQL = `
SELECT id, reference, client_name, order_total, assigned_staff, created_at, updated_at
FROM product_orders
WHERE id = $1`

// GetByID retrieves a product order with its financial entry, if any.
func (r *ProductOrderRepository) GetByID(ctx context.Context, id string) (*domain.ProductOrder, error) {
	row := r.pool.QueryRow(ctx, selectOrderSQL, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	if err := r.attachFinances(ctx, []*domain.ProductOrder{order}); err != nil {
		return nil, err
	}
	return order, nil
}

const listOrdersSQL = `
SELECT id, reference, client_name, order_total, assigned_staff, created_at, updated_at
FROM product_orders
WHERE created_at >= $1 AND created_at < $2
ORDER BY created_at, reference
LIMIT $3 OFFSET $4`

// List retrieves product orders created inside the window.
func (r *ProductOrderRepository) List(ctx context.Context, window usecase.Window, limit, offset int) ([]*domain.ProductOrder, error) {
	rows, err := r.pool.Query(ctx, listOrdersSQL,
		timeToPgTimestamptz(window.From), timeToPgTimestamptz(window.To), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.ProductOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachFinances(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

const updateOrderStaffSQL = `
UPDATE product_orders SET assigned_staff = $2, updated_at = $3 WHERE id = $1`

// UpdateAssignedStaff replaces an order's assigned-staff set inside tx.
func (r *ProductOrderRepository) UpdateAssignedStaff(ctx context.Context, tx usecase.Transaction, id string, staffNames []string, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, updateOrderStaffSQL, id, staffNames, timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// Delete removes a product order and, by cascade, its financial entry and
// commission lines.
func (r *ProductOrderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM product_orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

const selectOrderFinancesSQL = `
SELECT order_id, order_amount, studio_fee, other_expenses, profit, updated_at
FROM order_finances
WHERE order_id = ANY($1)`

func (r *ProductOrderRepository) attachFinances(ctx context.Context, orders []*domain.ProductOrder) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	byID := make(map[string]*domain.ProductOrder, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		byID[o.ID] = o
	}

	rows, err := r.pool.Query(ctx, selectOrderFinancesSQL, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   string
			fin       domain.OrderFinance
			amounts   [4]pgtype.Numeric
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&orderID, &amounts[0], &amounts[1], &amounts[2], &amounts[3], &updatedAt); err != nil {
			return err
		}
		fin.OrderAmount = numericToDecimal(amounts[0])
		fin.StudioFee = numericToDecimal(amounts[1])
		fin.OtherExpenses = numericToDecimal(amounts[2])
		fin.Profit = numericToDecimal(amounts[3])
		fin.UpdatedAt = updatedAt.Time

		if order, ok := byID[orderID]; ok {
			order.Finance = &fin
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	lines, err := loadCommissionLines(ctx, r.pool, ids)
	if err != nil {
		return err
	}
	for id, entityLines := range lines {
		if order, ok := byID[id]; ok && order.Finance != nil {
			order.Finance.CommissionLines = entityLines
		}
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.ProductOrder, error) {
	var (
		order      domain.ProductOrder
		orderTotal pgtype.Numeric
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&order.ID,
		&order.Reference,
		&order.ClientName,
		&orderTotal,
		&order.AssignedStaff,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.OrderTotal = numericToDecimal(orderTotal)
	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time
	return &order, nil
}
