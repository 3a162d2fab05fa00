package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"crm_records/internal/domain/order"
	"crm_records/internal/domain/repository"
)

var orderSortColumns = map[string]string{
	"order_date":   "order_date",
	"total_amount": "total_amount",
	"status":       "status",
}

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order row and one association row per product.
// Run inside Transactor.Transact so the writes land as one unit.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	q := queryerFrom(ctx, r.pool)

	const insertOrder = `
		INSERT INTO orders (id, customer_id, total_amount, status, order_date)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := q.Exec(ctx, insertOrder,
		o.ID,
		o.CustomerID,
		o.TotalAmount.String(),
		o.Status,
		o.OrderDate,
	); err != nil {
		return err
	}

	const insertAssoc = `
		INSERT INTO order_products (order_id, product_id)
		VALUES ($1, $2);
	`
	for _, productID := range o.ProductIDs {
		if _, err := q.Exec(ctx, insertAssoc, o.ID, productID); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	const query = `
		SELECT o.id, o.customer_id, o.total_amount::text, o.status, o.order_date,
			COALESCE(array_agg(op.product_id) FILTER (WHERE op.product_id IS NOT NULL), '{}')
		FROM orders o
		LEFT JOIN order_products op ON op.order_id = o.id
		WHERE o.id = $1
		GROUP BY o.id;
	`
	o, err := scanOrder(queryerFrom(ctx, r.pool).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context, filter repository.OrderFilter, sort *repository.Sort) ([]*order.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.total_amount::text, o.status, o.order_date,
			COALESCE(array_agg(op.product_id) FILTER (WHERE op.product_id IS NOT NULL), '{}')
		FROM orders o
		LEFT JOIN order_products op ON op.order_id = o.id`

	var args []any
	var conds []string
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("o.order_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("o.order_date <= $%d", len(args)))
	}
	if filter.TotalMin != nil {
		args = append(args, filter.TotalMin.String())
		conds = append(conds, fmt.Sprintf("o.total_amount >= $%d::numeric", len(args)))
	}
	if filter.TotalMax != nil {
		args = append(args, filter.TotalMax.String())
		conds = append(conds, fmt.Sprintf("o.total_amount <= $%d::numeric", len(args)))
	}
	query += whereClause(conds)
	query += " GROUP BY o.id"

	orderBy, err := sortClause(sort, orderSortColumns)
	if err != nil {
		return nil, err
	}
	query += orderBy

	rows, err := queryerFrom(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrderRepository) ListPendingSince(ctx context.Context, since time.Time) ([]repository.Reminder, error) {
	const query = `
		SELECT o.id, c.email, o.order_date
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.status = $1 AND o.order_date >= $2
		ORDER BY o.order_date ASC;
	`
	rows, err := queryerFrom(ctx, r.pool).Query(ctx, query, order.StatusPending, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.Reminder
	for rows.Next() {
		var rem repository.Reminder
		if err := rows.Scan(&rem.OrderID, &rem.CustomerEmail, &rem.OrderDate); err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := queryerFrom(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM orders;`).Scan(&n)
	return n, err
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order
	var total string
	if err := row.Scan(&o.ID, &o.CustomerID, &total, &o.Status, &o.OrderDate, &o.ProductIDs); err != nil {
		return nil, err
	}
	value, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("parse total_amount: %w", err)
	}
	o.TotalAmount = value
	return &o, nil
}
