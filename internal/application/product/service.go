package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crm_records/internal/config"
	domain "crm_records/internal/domain/product"
	"crm_records/internal/domain/repository"
	"crm_records/pkg/logger"
)

type Service struct {
	repo   repository.ProductRepository
	policy config.PolicyConfig
	log    logger.Logger
}

func NewService(repo repository.ProductRepository, policy config.PolicyConfig, log logger.Logger) *Service {
	return &Service{
		repo:   repo,
		policy: policy,
		log:    log,
	}
}

type CreateProductCommand struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type CreateResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Product *domain.Product `json:"product,omitempty"`
}

func (s *Service) CreateProduct(ctx context.Context, cmd CreateProductCommand) (CreateResult, error) {
	p, err := domain.NewProduct(uuid.NewString(), cmd.Name, cmd.Price, cmd.Stock)
	if err != nil {
		return rejected(err), nil
	}

	// Name uniqueness is a deployment policy, not a hard rule.
	if s.policy.EnforceUniqueProductName {
		exists, err := s.repo.NameExists(ctx, p.Name)
		if err != nil {
			return CreateResult{}, fmt.Errorf("check product name: %w", err)
		}
		if exists {
			return rejected(domain.ErrDuplicateName), nil
		}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return CreateResult{}, fmt.Errorf("create product: %w", err)
	}

	return CreateResult{
		Success: true,
		Message: "Product created successfully!",
		Product: p,
	}, nil
}

func (s *Service) ListProducts(ctx context.Context, filter repository.ProductFilter, sort *repository.Sort) ([]*domain.Product, error) {
	return s.repo.List(ctx, filter, sort)
}

// Restocked reports one product bumped by a remediation run.
type Restocked struct {
	ID       string
	Name     string
	NewStock int
}

// RestockBelowThreshold tops up every product whose stock is below
// threshold. Each bump is a single atomic increment, so an overlapping
// manual stock edit is never lost.
func (s *Service) RestockBelowThreshold(ctx context.Context, threshold, increment int) ([]Restocked, error) {
	low, err := s.repo.ListBelowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low-stock products: %w", err)
	}

	restocked := make([]Restocked, 0, len(low))
	for _, p := range low {
		newStock, err := s.repo.IncrementStock(ctx, p.ID, increment)
		if err != nil {
			return restocked, fmt.Errorf("restock %s: %w", p.Name, err)
		}
		restocked = append(restocked, Restocked{ID: p.ID, Name: p.Name, NewStock: newStock})
	}
	return restocked, nil
}

func rejected(err error) CreateResult {
	return CreateResult{Success: false, Message: messageFor(err)}
}

func messageFor(err error) string {
	switch err {
	case domain.ErrInvalidPrice:
		return "Price must be positive."
	case domain.ErrInvalidStock:
		return "Stock cannot be negative."
	case domain.ErrDuplicateName:
		return "Product already exists."
	case domain.ErrMissingField:
		return "Product name is required."
	default:
		return err.Error()
	}
}
