package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidSortKey is returned when a list call names a sort key the
// entity does not expose. Rejected before any SQL is issued.
var ErrInvalidSortKey = errors.New("invalid sort key")

// Sort is an optional single-key ordering.
type Sort struct {
	Key  string
	Desc bool
}

// Filters compose with logical AND. A zero field means no constraint.

type CustomerFilter struct {
	NameContains  string
	EmailContains string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

type ProductFilter struct {
	NameContains string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	StockMin     *int
	StockMax     *int
}

type OrderFilter struct {
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	TotalMin *decimal.Decimal
	TotalMax *decimal.Decimal
}

// Reminder is the read-model row for the pending-order reminder scan.
type Reminder struct {
	OrderID       string
	CustomerEmail string
	OrderDate     time.Time
}

// Transactor runs fn inside a single all-or-nothing transaction. The
// transaction travels in the context handed to fn; repository calls
// made with that context join it.
type Transactor interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}
