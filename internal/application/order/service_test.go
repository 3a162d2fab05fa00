package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customerdomain "crm_records/internal/domain/customer"
	domain "crm_records/internal/domain/order"
	productdomain "crm_records/internal/domain/product"
	"crm_records/internal/domain/repository"
	"crm_records/pkg/logger"
)

// MockOrderRepo mocks repository.OrderRepository.
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepo) List(ctx context.Context, filter repository.OrderFilter, sort *repository.Sort) ([]*domain.Order, error) {
	args := m.Called(ctx, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepo) ListPendingSince(ctx context.Context, since time.Time) ([]repository.Reminder, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Reminder), args.Error(1)
}

func (m *MockOrderRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockCustomerRepo mocks repository.CustomerRepository.
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *customerdomain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*customerdomain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerdomain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepo) List(ctx context.Context, filter repository.CustomerFilter, sort *repository.Sort) ([]*customerdomain.Customer, error) {
	args := m.Called(ctx, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customerdomain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockProductRepo mocks repository.ProductRepository.
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *productdomain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*productdomain.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productdomain.Product), args.Error(1)
}

func (m *MockProductRepo) NameExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context, filter repository.ProductFilter, sort *repository.Sort) ([]*productdomain.Product, error) {
	args := m.Called(ctx, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productdomain.Product), args.Error(1)
}

func (m *MockProductRepo) ListBelowStock(ctx context.Context, threshold int) ([]*productdomain.Product, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productdomain.Product), args.Error(1)
}

func (m *MockProductRepo) IncrementStock(ctx context.Context, id string, by int) (int, error) {
	args := m.Called(ctx, id, by)
	return args.Int(0), args.Error(1)
}

type passthroughTx struct{}

func (passthroughTx) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testCustomer(id, email string) *customerdomain.Customer {
	c, err := customerdomain.NewCustomer(id, "Test", email, "", false)
	if err != nil {
		panic(err)
	}
	return c
}

func testProduct(id, name string, price float64) *productdomain.Product {
	p, err := productdomain.NewProduct(id, name, decimal.NewFromFloat(price), 10)
	if err != nil {
		panic(err)
	}
	return p
}

func newTestService(orders *MockOrderRepo, customers *MockCustomerRepo, products *MockProductRepo) *Service {
	return NewService(orders, customers, products, passthroughTx{}, nil, logger.NewNop())
}

func TestCreateOrder_Success(t *testing.T) {
	orders := new(MockOrderRepo)
	customers := new(MockCustomerRepo)
	products := new(MockProductRepo)
	svc := newTestService(orders, customers, products)

	ctx := context.Background()
	customers.On("GetByID", mock.Anything, "c-1").Return(testCustomer("c-1", "alice@example.com"), nil)
	products.On("GetByIDs", mock.Anything, []string{"p-1", "p-2"}).Return([]*productdomain.Product{
		testProduct("p-1", "Laptop", 999.99),
		testProduct("p-2", "Mouse", 25.50),
	}, nil)
	orders.On("Create", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)

	result, err := svc.CreateOrder(ctx, CreateOrderCommand{
		CustomerID: "c-1",
		ProductIDs: []string{"p-1", "p-2"},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Order)
	assert.Equal(t, "1025.49", result.Order.TotalAmount.String())
	assert.Equal(t, domain.StatusPending, result.Order.Status)
	orders.AssertExpectations(t)
}

func TestCreateOrder_CustomerNotFound(t *testing.T) {
	orders := new(MockOrderRepo)
	customers := new(MockCustomerRepo)
	products := new(MockProductRepo)
	svc := newTestService(orders, customers, products)

	customers.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	result, err := svc.CreateOrder(context.Background(), CreateOrderCommand{
		CustomerID: "missing",
		ProductIDs: []string{"p-1"},
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid customer ID.", result.Message)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_EmptyProductList(t *testing.T) {
	orders := new(MockOrderRepo)
	customers := new(MockCustomerRepo)
	products := new(MockProductRepo)
	svc := newTestService(orders, customers, products)

	customers.On("GetByID", mock.Anything, "c-1").Return(testCustomer("c-1", "a@x.com"), nil)

	result, err := svc.CreateOrder(context.Background(), CreateOrderCommand{
		CustomerID: "c-1",
		ProductIDs: nil,
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Order needs at least one product.", result.Message)
	products.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestCreateOrder_UnknownProductID(t *testing.T) {
	orders := new(MockOrderRepo)
	customers := new(MockCustomerRepo)
	products := new(MockProductRepo)
	svc := newTestService(orders, customers, products)

	customers.On("GetByID", mock.Anything, "c-1").Return(testCustomer("c-1", "a@x.com"), nil)
	// One of the two ids resolves; the count mismatch rejects the call.
	products.On("GetByIDs", mock.Anything, []string{"p-1", "ghost"}).Return([]*productdomain.Product{
		testProduct("p-1", "Laptop", 999.99),
	}, nil)

	result, err := svc.CreateOrder(context.Background(), CreateOrderCommand{
		CustomerID: "c-1",
		ProductIDs: []string{"p-1", "ghost"},
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Some product IDs are invalid.", result.Message)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_ExplicitOrderDate(t *testing.T) {
	orders := new(MockOrderRepo)
	customers := new(MockCustomerRepo)
	products := new(MockProductRepo)
	svc := newTestService(orders, customers, products)

	date := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	customers.On("GetByID", mock.Anything, "c-1").Return(testCustomer("c-1", "a@x.com"), nil)
	products.On("GetByIDs", mock.Anything, []string{"p-1"}).Return([]*productdomain.Product{
		testProduct("p-1", "Mouse", 25.50),
	}, nil)
	orders.On("Create", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)

	result, err := svc.CreateOrder(context.Background(), CreateOrderCommand{
		CustomerID: "c-1",
		ProductIDs: []string{"p-1"},
		OrderDate:  &date,
	})

	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, date, result.Order.OrderDate)
}

func TestPendingSince(t *testing.T) {
	orders := new(MockOrderRepo)
	customers := new(MockCustomerRepo)
	products := new(MockProductRepo)
	svc := newTestService(orders, customers, products)

	since := time.Now().AddDate(0, 0, -7)
	want := []repository.Reminder{
		{OrderID: "o-1", CustomerEmail: "alice@example.com", OrderDate: time.Now()},
	}
	orders.On("ListPendingSince", mock.Anything, since).Return(want, nil)

	got, err := svc.PendingSince(context.Background(), since)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
