package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crm_records/internal/config"
	domain "crm_records/internal/domain/product"
	"crm_records/internal/domain/repository"
	"crm_records/pkg/logger"
)

// MockProductRepo mocks repository.ProductRepository.
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepo) NameExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context, filter repository.ProductFilter, sort *repository.Sort) ([]*domain.Product, error) {
	args := m.Called(ctx, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepo) ListBelowStock(ctx context.Context, threshold int) ([]*domain.Product, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepo) IncrementStock(ctx context.Context, id string, by int) (int, error) {
	args := m.Called(ctx, id, by)
	return args.Int(0), args.Error(1)
}

func testProduct(id, name string, price float64, stock int) *domain.Product {
	p, err := domain.NewProduct(id, name, decimal.NewFromFloat(price), stock)
	if err != nil {
		panic(err)
	}
	return p
}

func TestCreateProduct_Success(t *testing.T) {
	repo := new(MockProductRepo)
	svc := NewService(repo, config.PolicyConfig{EnforceUniqueProductName: true}, logger.NewNop())

	ctx := context.Background()
	repo.On("NameExists", ctx, "Laptop").Return(false, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*product.Product")).Return(nil)

	result, err := svc.CreateProduct(ctx, CreateProductCommand{
		Name:  "Laptop",
		Price: decimal.NewFromFloat(999.99),
		Stock: 10,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Product)
	assert.Equal(t, "999.99", result.Product.Price.String())
	repo.AssertExpectations(t)
}

func TestCreateProduct_InvalidPrice(t *testing.T) {
	repo := new(MockProductRepo)
	svc := NewService(repo, config.PolicyConfig{}, logger.NewNop())

	tests := []struct {
		name  string
		price decimal.Decimal
		ok    bool
	}{
		{"zero", decimal.Zero, false},
		{"negative", decimal.NewFromInt(-1), false},
		{"one cent", decimal.NewFromFloat(0.01), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ok {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once()
			}

			result, err := svc.CreateProduct(context.Background(), CreateProductCommand{
				Name:  "Widget",
				Price: tt.price,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.ok, result.Success)
			if !tt.ok {
				assert.Equal(t, "Price must be positive.", result.Message)
			}
		})
	}
}

func TestCreateProduct_InvalidStock(t *testing.T) {
	repo := new(MockProductRepo)
	svc := NewService(repo, config.PolicyConfig{}, logger.NewNop())

	result, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		Name:  "Widget",
		Price: decimal.NewFromInt(10),
		Stock: -1,
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Stock cannot be negative.", result.Message)
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	repo := new(MockProductRepo)
	svc := NewService(repo, config.PolicyConfig{EnforceUniqueProductName: true}, logger.NewNop())

	ctx := context.Background()
	repo.On("NameExists", ctx, "Laptop").Return(true, nil)

	result, err := svc.CreateProduct(ctx, CreateProductCommand{
		Name:  "Laptop",
		Price: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Product already exists.", result.Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_UniquenessPolicyDisabled(t *testing.T) {
	repo := new(MockProductRepo)
	svc := NewService(repo, config.PolicyConfig{EnforceUniqueProductName: false}, logger.NewNop())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil)

	result, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		Name:  "Laptop",
		Price: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	repo.AssertNotCalled(t, "NameExists", mock.Anything, mock.Anything)
}

func TestRestockBelowThreshold(t *testing.T) {
	repo := new(MockProductRepo)
	svc := NewService(repo, config.PolicyConfig{}, logger.NewNop())

	ctx := context.Background()
	low := []*domain.Product{
		testProduct("p-1", "Laptop", 999.99, 5),
		testProduct("p-3", "Keyboard", 75.00, 9),
	}
	repo.On("ListBelowStock", ctx, 10).Return(low, nil)
	repo.On("IncrementStock", ctx, "p-1", 10).Return(15, nil)
	repo.On("IncrementStock", ctx, "p-3", 10).Return(19, nil)

	restocked, err := svc.RestockBelowThreshold(ctx, 10, 10)

	require.NoError(t, err)
	require.Len(t, restocked, 2)
	assert.Equal(t, Restocked{ID: "p-1", Name: "Laptop", NewStock: 15}, restocked[0])
	assert.Equal(t, Restocked{ID: "p-3", Name: "Keyboard", NewStock: 19}, restocked[1])
	repo.AssertExpectations(t)
}

func TestRestockBelowThreshold_NothingLow(t *testing.T) {
	repo := new(MockProductRepo)
	svc := NewService(repo, config.PolicyConfig{}, logger.NewNop())

	ctx := context.Background()
	repo.On("ListBelowStock", ctx, 10).Return([]*domain.Product{}, nil)

	restocked, err := svc.RestockBelowThreshold(ctx, 10, 10)

	require.NoError(t, err)
	assert.Empty(t, restocked)
	repo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything, mock.Anything)
}
