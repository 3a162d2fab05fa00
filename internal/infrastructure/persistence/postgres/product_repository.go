package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"crm_records/internal/domain/product"
	"crm_records/internal/domain/repository"
)

var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}

	const query = `
		INSERT INTO products (id, name, price, stock, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := queryerFrom(ctx, r.pool).Exec(ctx, query,
		p.ID,
		p.Name,
		p.Price.String(),
		p.Stock,
		p.CreatedAt,
	)
	return err
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) ([]*product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
		SELECT id, name, price::text, stock, created_at
		FROM products
		WHERE id = ANY($1);
	`
	rows, err := queryerFrom(ctx, r.pool).Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) NameExists(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM products WHERE name = $1);`

	var exists bool
	if err := queryerFrom(ctx, r.pool).QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter, sort *repository.Sort) ([]*product.Product, error) {
	query := `SELECT id, name, price::text, stock, created_at FROM products`

	var args []any
	var conds []string
	if filter.NameContains != "" {
		args = append(args, "%"+filter.NameContains+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.PriceMin != nil {
		args = append(args, filter.PriceMin.String())
		conds = append(conds, fmt.Sprintf("price >= $%d::numeric", len(args)))
	}
	if filter.PriceMax != nil {
		args = append(args, filter.PriceMax.String())
		conds = append(conds, fmt.Sprintf("price <= $%d::numeric", len(args)))
	}
	if filter.StockMin != nil {
		args = append(args, *filter.StockMin)
		conds = append(conds, fmt.Sprintf("stock >= $%d", len(args)))
	}
	if filter.StockMax != nil {
		args = append(args, *filter.StockMax)
		conds = append(conds, fmt.Sprintf("stock <= $%d", len(args)))
	}
	query += whereClause(conds)

	orderBy, err := sortClause(sort, productSortColumns)
	if err != nil {
		return nil, err
	}
	query += orderBy

	rows, err := queryerFrom(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) ListBelowStock(ctx context.Context, threshold int) ([]*product.Product, error) {
	const query = `
		SELECT id, name, price::text, stock, created_at
		FROM products
		WHERE stock < $1
		ORDER BY stock ASC;
	`
	rows, err := queryerFrom(ctx, r.pool).Query(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// IncrementStock bumps the stock level in a single UPDATE so an
// overlapping manual stock edit cannot be lost.
func (r *ProductRepository) IncrementStock(ctx context.Context, id string, by int) (int, error) {
	const query = `
		UPDATE products
		SET stock = stock + $2
		WHERE id = $1
		RETURNING stock;
	`
	var stock int
	err := queryerFrom(ctx, r.pool).QueryRow(ctx, query, id, by).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("product %s not found", id)
	}
	if err != nil {
		return 0, err
	}
	return stock, nil
}

func scanProducts(rows pgx.Rows) ([]*product.Product, error) {
	var out []*product.Product
	for rows.Next() {
		var p product.Product
		var price string
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		value, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parse price: %w", err)
		}
		p.Price = value
		out = append(out, &p)
	}
	return out, rows.Err()
}
