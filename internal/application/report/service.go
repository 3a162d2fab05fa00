package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"crm_records/internal/domain/order"
	"crm_records/internal/domain/repository"
)

// CustomerCounter is the slice of the customer store the report needs.
type CustomerCounter interface {
	Count(ctx context.Context) (int, error)
}

// OrderLister is the slice of the order store the report needs.
type OrderLister interface {
	List(ctx context.Context, filter repository.OrderFilter, sort *repository.Sort) ([]*order.Order, error)
}

// Summary is one aggregation over the whole store.
type Summary struct {
	TotalCustomers int
	TotalOrders    int
	TotalRevenue   decimal.Decimal
}

type Service struct {
	customers CustomerCounter
	orders    OrderLister
}

func NewService(customers CustomerCounter, orders OrderLister) *Service {
	return &Service{
		customers: customers,
		orders:    orders,
	}
}

// Generate counts customers and orders and sums order totals. Revenue
// sums the committed snapshot totals, so later price changes never
// shift past reports.
func (s *Service) Generate(ctx context.Context) (Summary, error) {
	totalCustomers, err := s.customers.Count(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("count customers: %w", err)
	}

	orders, err := s.orders.List(ctx, repository.OrderFilter{}, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("list orders: %w", err)
	}

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.TotalAmount)
	}

	return Summary{
		TotalCustomers: totalCustomers,
		TotalOrders:    len(orders),
		TotalRevenue:   revenue,
	}, nil
}
