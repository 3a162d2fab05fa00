package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	orderapp "crm_records/internal/application/order"
	productapp "crm_records/internal/application/product"
	"crm_records/internal/application/report"
	"crm_records/internal/config"
	"crm_records/internal/infrastructure/http/probe"
	kafkainfra "crm_records/internal/infrastructure/messaging/kafka"
	"crm_records/internal/infrastructure/persistence/postgres"
	"crm_records/internal/jobs"
	"crm_records/pkg/logger"
)

// The jobs binary hosts the scheduled maintenance work and the event
// audit consumer. It shares the store with the api binary and
// coordinates with it only through the database.
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		zlog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	tx := postgres.NewTransactor(pool)

	productService := productapp.NewService(productRepo, cfg.Policy, zlog)
	orderService := orderapp.NewService(orderRepo, customerRepo, productRepo, tx, nil, zlog)
	reportService := report.NewService(customerRepo, orderRepo)
	prober := probe.NewClient(probe.Config{})

	runner := jobs.NewRunner(zlog)
	runner.Register(
		jobs.NewHeartbeat(prober, cfg.Jobs.ProbeURL, jobs.NewFileSink(cfg.Jobs.HeartbeatLogPath), zlog),
		cfg.Jobs.HeartbeatInterval,
	)
	runner.Register(
		jobs.NewLowStock(productService, cfg.Jobs.LowStockThreshold, cfg.Jobs.RestockIncrement,
			jobs.NewFileSink(cfg.Jobs.LowStockLogPath), zlog),
		cfg.Jobs.LowStockInterval,
	)
	runner.Register(
		jobs.NewWeeklyReport(reportService, jobs.NewFileSink(cfg.Jobs.ReportLogPath), zlog),
		cfg.Jobs.ReportInterval,
	)
	runner.Register(
		jobs.NewReminderScan(orderService, cfg.Jobs.ReminderWindow,
			jobs.NewFileSink(cfg.Jobs.ReminderLogPath), zlog),
		cfg.Jobs.ReminderInterval,
	)

	consumer, err := kafkainfra.NewAuditConsumer(cfg.Kafka, jobs.NewFileSink(cfg.Jobs.AuditLogPath), zlog)
	if err != nil {
		zlog.Fatal("kafka consumer failed", logger.Error(err))
	}
	defer consumer.Close()

	go func() {
		if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
			zlog.Error("audit consumer stopped", logger.Error(err))
		}
	}()

	zlog.Info("job runner starting")
	runner.Start(ctx)
	zlog.Info("job runner stopped")
}
