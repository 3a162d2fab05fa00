package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"crm_records/internal/config"
	domain "crm_records/internal/domain/customer"
	"crm_records/internal/domain/repository"
	"crm_records/pkg/logger"
)

// Publisher emits a record event after a successful commit.
type Publisher interface {
	PublishEvent(ctx context.Context, payload []byte) error
}

type Service struct {
	repo      repository.CustomerRepository
	tx        repository.Transactor
	publisher Publisher
	policy    config.PolicyConfig
	log       logger.Logger
}

func NewService(
	repo repository.CustomerRepository,
	tx repository.Transactor,
	publisher Publisher,
	policy config.PolicyConfig,
	log logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		tx:        tx,
		publisher: publisher,
		policy:    policy,
		log:       log,
	}
}

type CreateCustomerCommand struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateResult is the typed mutation outcome: Success distinguishes
// "processed but rejected" (Message explains why) from a created
// record.
type CreateResult struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Customer *domain.Customer `json:"customer,omitempty"`
}

type BulkResult struct {
	Created []*domain.Customer `json:"created"`
	Errors  []string           `json:"errors"`
}

// CreateCustomer validates and persists one customer. Validation and
// conflict failures come back as a rejected result; only store faults
// surface as errors.
func (s *Service) CreateCustomer(ctx context.Context, cmd CreateCustomerCommand) (CreateResult, error) {
	c, err := domain.NewCustomer(uuid.NewString(), cmd.Name, cmd.Email, cmd.Phone, s.policy.RequirePhone)
	if err != nil {
		return rejected(err), nil
	}

	exists, err := s.repo.EmailExists(ctx, c.Email)
	if err != nil {
		return CreateResult{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return rejected(domain.ErrDuplicateEmail), nil
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return CreateResult{}, fmt.Errorf("create customer: %w", err)
	}

	s.publishCreated(ctx, c)

	return CreateResult{
		Success:  true,
		Message:  "Customer created successfully!",
		Customer: c,
	}, nil
}

// BulkCreateCustomers is a best-effort batch: each item succeeds or
// fails on its own, and an item sees every earlier item of the same
// batch as already committed. The whole batch runs in one transaction
// so readers never observe a half-written batch.
func (s *Service) BulkCreateCustomers(ctx context.Context, cmds []CreateCustomerCommand) (BulkResult, error) {
	result := BulkResult{
		Created: []*domain.Customer{},
		Errors:  []string{},
	}

	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		for _, cmd := range cmds {
			c, err := domain.NewCustomer(uuid.NewString(), cmd.Name, cmd.Email, cmd.Phone, s.policy.RequirePhone)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%v: %s", err, cmd.Email))
				continue
			}

			exists, err := s.repo.EmailExists(ctx, c.Email)
			if err != nil {
				return fmt.Errorf("check email: %w", err)
			}
			if exists {
				result.Errors = append(result.Errors, fmt.Sprintf("Email already exists: %s", c.Email))
				continue
			}

			if err := s.repo.Create(ctx, c); err != nil {
				return fmt.Errorf("create customer: %w", err)
			}
			result.Created = append(result.Created, c)
		}
		return nil
	})
	if err != nil {
		return BulkResult{}, err
	}

	for _, c := range result.Created {
		s.publishCreated(ctx, c)
	}

	return result, nil
}

// ListCustomers applies the AND-composed filter and optional ordering.
func (s *Service) ListCustomers(ctx context.Context, filter repository.CustomerFilter, sort *repository.Sort) ([]*domain.Customer, error) {
	return s.repo.List(ctx, filter, sort)
}

func rejected(err error) CreateResult {
	return CreateResult{Success: false, Message: messageFor(err)}
}

func messageFor(err error) string {
	switch err {
	case domain.ErrDuplicateEmail:
		return "Email already exists."
	case domain.ErrInvalidPhone:
		return "Invalid phone format. Use +1234567890 or 123-456-7890."
	case domain.ErrInvalidEmail:
		return "Invalid email format."
	case domain.ErrMissingField:
		return "Name and email are required."
	default:
		return err.Error()
	}
}

type createdEvent struct {
	Entity     string `json:"entity"`
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	OccurredAt string `json:"occurred_at"`
}

// publishCreated is best effort: a publish failure is logged, never
// surfaced to the caller of a committed mutation.
func (s *Service) publishCreated(ctx context.Context, c *domain.Customer) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(createdEvent{
		Entity:     "customer",
		ID:         c.ID,
		Summary:    c.Email,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.log.Error("encode customer event", logger.Error(err))
		return
	}
	if err := s.publisher.PublishEvent(ctx, payload); err != nil {
		s.log.Error("publish customer event", logger.String("customer_id", c.ID), logger.Error(err))
	}
}
