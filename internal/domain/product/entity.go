package product

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewProduct validates the input and builds a product record.
func NewProduct(id, name string, price decimal.Decimal, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return nil, ErrMissingField
	}

	p, err := NewPrice(price)
	if err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:        id,
		Name:      name,
		Price:     p.Value(),
		Stock:     stock,
		CreatedAt: time.Now().UTC(),
	}, nil
}
