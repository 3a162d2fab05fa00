package repository

import (
	"context"
	"time"

	"crm_records/internal/domain/order"
)

type OrderRepository interface {
	// Create persists the order row and its product associations.
	// Callers wanting atomicity run it inside Transactor.Transact.
	Create(ctx context.Context, o *order.Order) error
	GetByID(ctx context.Context, id string) (*order.Order, error)
	List(ctx context.Context, filter OrderFilter, sort *Sort) ([]*order.Order, error)
	// ListPendingSince returns pending orders placed at or after since,
	// joined with the owning customer's email.
	ListPendingSince(ctx context.Context, since time.Time) ([]Reminder, error)
	Count(ctx context.Context) (int, error)
}
