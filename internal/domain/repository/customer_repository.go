package repository

import (
	"context"

	"crm_records/internal/domain/customer"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	GetByID(ctx context.Context, id string) (*customer.Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter CustomerFilter, sort *Sort) ([]*customer.Customer, error)
	Count(ctx context.Context) (int, error)
}
