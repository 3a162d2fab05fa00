package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	customerapp "crm_records/internal/application/customer"
	orderapp "crm_records/internal/application/order"
	productapp "crm_records/internal/application/product"
	"crm_records/internal/config"
	"crm_records/internal/infrastructure/persistence/postgres"
	"crm_records/pkg/logger"
)

// The seed binary loads a small baseline data set so a fresh
// deployment has something to query. Reruns report duplicates instead
// of failing.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zlog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		zlog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		zlog.Fatal("ensure schema failed", logger.Error(err))
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	tx := postgres.NewTransactor(pool)

	customers := customerapp.NewService(customerRepo, tx, nil, cfg.Policy, zlog)
	products := productapp.NewService(productRepo, cfg.Policy, zlog)
	orders := orderapp.NewService(orderRepo, customerRepo, productRepo, tx, nil, zlog)

	seedCustomers := []customerapp.CreateCustomerCommand{
		{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
		{Name: "Carol", Email: "carol@example.com"},
	}

	var firstCustomerID string
	for _, cmd := range seedCustomers {
		result, err := customers.CreateCustomer(ctx, cmd)
		if err != nil {
			zlog.Fatal("seed customer failed", logger.String("email", cmd.Email), logger.Error(err))
		}
		if !result.Success {
			zlog.Warn("customer skipped", logger.String("email", cmd.Email), logger.String("reason", result.Message))
			continue
		}
		if firstCustomerID == "" {
			firstCustomerID = result.Customer.ID
		}
		zlog.Info("customer seeded", logger.String("email", cmd.Email))
	}

	seedProducts := []productapp.CreateProductCommand{
		{Name: "Laptop", Price: decimal.NewFromFloat(999.99), Stock: 5},
		{Name: "Mouse", Price: decimal.NewFromFloat(19.99), Stock: 50},
		{Name: "Keyboard", Price: decimal.NewFromFloat(49.99), Stock: 8},
	}

	var productIDs []string
	for _, cmd := range seedProducts {
		result, err := products.CreateProduct(ctx, cmd)
		if err != nil {
			zlog.Fatal("seed product failed", logger.String("name", cmd.Name), logger.Error(err))
		}
		if !result.Success {
			zlog.Warn("product skipped", logger.String("name", cmd.Name), logger.String("reason", result.Message))
			continue
		}
		productIDs = append(productIDs, result.Product.ID)
		zlog.Info("product seeded", logger.String("name", cmd.Name))
	}

	if firstCustomerID == "" || len(productIDs) < 2 {
		zlog.Info("seed finished, order skipped")
		return
	}

	orderResult, err := orders.CreateOrder(ctx, orderapp.CreateOrderCommand{
		CustomerID: firstCustomerID,
		ProductIDs: productIDs[:2],
	})
	if err != nil {
		zlog.Fatal("seed order failed", logger.Error(err))
	}
	if !orderResult.Success {
		zlog.Warn("order skipped", logger.String("reason", orderResult.Message))
		return
	}
	zlog.Info("order seeded",
		logger.String("order_id", orderResult.Order.ID),
		logger.String("total", orderResult.Order.TotalAmount.String()),
	)
}
