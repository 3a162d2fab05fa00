package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm_records/internal/domain/customer"
	"crm_records/internal/domain/repository"
)

var customerSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return fmt.Errorf("customer is nil")
	}

	const query = `
		INSERT INTO customers (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := queryerFrom(ctx, r.pool).Exec(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.CreatedAt,
	)
	return err
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	const query = `
		SELECT id, name, email, phone, created_at
		FROM customers
		WHERE id = $1;
	`
	var c customer.Customer
	err := queryerFrom(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1);`

	var exists bool
	if err := queryerFrom(ctx, r.pool).QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter repository.CustomerFilter, sort *repository.Sort) ([]*customer.Customer, error) {
	query := `SELECT id, name, email, phone, created_at FROM customers`

	var args []any
	var conds []string
	if filter.NameContains != "" {
		args = append(args, "%"+filter.NameContains+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.EmailContains != "" {
		args = append(args, "%"+filter.EmailContains+"%")
		conds = append(conds, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if filter.CreatedFrom != nil {
		args = append(args, *filter.CreatedFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.CreatedTo != nil {
		args = append(args, *filter.CreatedTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	query += whereClause(conds)

	orderBy, err := sortClause(sort, customerSortColumns)
	if err != nil {
		return nil, err
	}
	query += orderBy

	rows, err := queryerFrom(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := queryerFrom(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&n)
	return n, err
}
