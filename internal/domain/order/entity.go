package order

import (
	"time"

	"github.com/shopspring/decimal"

	"crm_records/internal/domain/product"
)

type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	ProductIDs  []string        `json:"product_ids"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	OrderDate   time.Time       `json:"order_date"`
}

// NewOrder builds an order over already-resolved products. TotalAmount
// is a snapshot of the product prices at this moment; later price
// changes never touch it. orderDate falls back to the current time.
func NewOrder(id, customerID string, products []*product.Product, orderDate time.Time) (*Order, error) {
	if id == "" || customerID == "" {
		return nil, ErrMissingField
	}
	if len(products) == 0 {
		return nil, ErrEmptyProductList
	}

	total := decimal.Zero
	ids := make([]string, 0, len(products))
	for _, p := range products {
		total = total.Add(p.Price)
		ids = append(ids, p.ID)
	}

	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}

	return &Order{
		ID:          id,
		CustomerID:  customerID,
		ProductIDs:  ids,
		TotalAmount: total,
		Status:      StatusPending,
		OrderDate:   orderDate,
	}, nil
}
