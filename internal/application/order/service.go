package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "crm_records/internal/domain/order"
	"crm_records/internal/domain/repository"
	"crm_records/pkg/logger"
)

// Publisher emits a record event after a successful commit.
type Publisher interface {
	PublishEvent(ctx context.Context, payload []byte) error
}

type Service struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	tx        repository.Transactor
	publisher Publisher
	log       logger.Logger
}

func NewService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	tx repository.Transactor,
	publisher Publisher,
	log logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		customers: customers,
		products:  products,
		tx:        tx,
		publisher: publisher,
		log:       log,
	}
}

type CreateOrderCommand struct {
	CustomerID string     `json:"customer_id"`
	ProductIDs []string   `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date,omitempty"`
}

type CreateResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Order   *domain.Order `json:"order,omitempty"`
}

// CreateOrder resolves the customer and products, computes the total
// as a snapshot of the resolved prices, and persists the order row
// plus its product associations in one transaction. No partial order
// is ever visible: any failure before commit rolls everything back.
func (s *Service) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (CreateResult, error) {
	var created *domain.Order

	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		c, err := s.customers.GetByID(ctx, cmd.CustomerID)
		if err != nil {
			return fmt.Errorf("resolve customer: %w", err)
		}
		if c == nil {
			return domain.ErrCustomerNotFound
		}

		if len(cmd.ProductIDs) == 0 {
			return domain.ErrEmptyProductList
		}

		products, err := s.products.GetByIDs(ctx, cmd.ProductIDs)
		if err != nil {
			return fmt.Errorf("resolve products: %w", err)
		}
		// Any unknown id shows up as a count mismatch.
		if len(products) != len(cmd.ProductIDs) {
			return domain.ErrInvalidProductIDs
		}

		var orderDate time.Time
		if cmd.OrderDate != nil {
			orderDate = *cmd.OrderDate
		}

		o, err := domain.NewOrder(uuid.NewString(), c.ID, products, orderDate)
		if err != nil {
			return err
		}

		if err := s.orders.Create(ctx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		created = o
		return nil
	})
	if err != nil {
		if msg, ok := rejectionMessage(err); ok {
			return CreateResult{Success: false, Message: msg}, nil
		}
		return CreateResult{}, err
	}

	s.publishCreated(ctx, created)

	return CreateResult{
		Success: true,
		Message: "Order created successfully!",
		Order:   created,
	}, nil
}

func (s *Service) ListOrders(ctx context.Context, filter repository.OrderFilter, sort *repository.Sort) ([]*domain.Order, error) {
	return s.orders.List(ctx, filter, sort)
}

// PendingSince returns the reminder rows for pending orders placed at
// or after since.
func (s *Service) PendingSince(ctx context.Context, since time.Time) ([]repository.Reminder, error) {
	return s.orders.ListPendingSince(ctx, since)
}

func rejectionMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "Invalid customer ID.", true
	case errors.Is(err, domain.ErrEmptyProductList):
		return "Order needs at least one product.", true
	case errors.Is(err, domain.ErrInvalidProductIDs):
		return "Some product IDs are invalid.", true
	default:
		return "", false
	}
}

type createdEvent struct {
	Entity     string `json:"entity"`
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	OccurredAt string `json:"occurred_at"`
}

func (s *Service) publishCreated(ctx context.Context, o *domain.Order) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(createdEvent{
		Entity:     "order",
		ID:         o.ID,
		Summary:    o.TotalAmount.String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.log.Error("encode order event", logger.Error(err))
		return
	}
	if err := s.publisher.PublishEvent(ctx, payload); err != nil {
		s.log.Error("publish order event", logger.String("order_id", o.ID), logger.Error(err))
	}
}
