package main

import (
	"context"
	"log"

	customerapp "crm_records/internal/application/customer"
	orderapp "crm_records/internal/application/order"
	productapp "crm_records/internal/application/product"
	"crm_records/internal/config"
	ginserver "crm_records/internal/infrastructure/http/gin"
	kafkainfra "crm_records/internal/infrastructure/messaging/kafka"
	"crm_records/internal/infrastructure/persistence/postgres"
	"crm_records/internal/interfaces/http/handler"
	"crm_records/internal/interfaces/http/router"
	"crm_records/pkg/logger"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	producer, err := kafkainfra.NewEventProducer(cfg.Kafka, zlog)
	if err != nil {
		zlog.Fatal("kafka producer failed", logger.Error(err))
	}
	defer producer.Close(ctx)

	customerService := customerapp.NewService(customerRepo, tx, producer, cfg.Policy, zlog)
	productService := productapp.NewService(productRepo, cfg.Policy, zlog)
	orderService := orderapp.NewService(orderRepo, customerRepo, productRepo, tx, producer, zlog)

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine,
		handler.NewCustomerHandler(customerService),
		handler.NewProductHandler(productService),
		handler.NewOrderHandler(orderService),
	)

	server := ginserver.NewServer(cfg.Server, engine)
	zlog.Info("http server starting", logger.String("addr", cfg.Server.Address()))
	if err := server.Run(); err != nil {
		zlog.Fatal("server run failed", logger.Error(err))
	}
}
