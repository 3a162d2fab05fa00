package repository

import (
	"context"

	"crm_records/internal/domain/product"
)

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	GetByIDs(ctx context.Context, ids []string) ([]*product.Product, error)
	NameExists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, filter ProductFilter, sort *Sort) ([]*product.Product, error)
	ListBelowStock(ctx context.Context, threshold int) ([]*product.Product, error)
	// IncrementStock adds by to the product's stock atomically and
	// returns the new level.
	IncrementStock(ctx context.Context, id string, by int) (int, error)
}
