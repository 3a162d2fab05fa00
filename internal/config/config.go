package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	DB     PostgresConfig
	Kafka  KafkaConfig
	Policy PolicyConfig
	Jobs   JobsConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Brokers       []string
	EventTopic    string
	ConsumerGroup string
}

// PolicyConfig resolves the validation rules that vary between
// deployments. They are decided once at construction time so every
// caller sees the same behavior.
type PolicyConfig struct {
	EnforceUniqueProductName bool
	RequirePhone             bool
}

type JobsConfig struct {
	HeartbeatInterval time.Duration
	LowStockInterval  time.Duration
	ReportInterval    time.Duration
	ReminderInterval  time.Duration

	LowStockThreshold int
	RestockIncrement  int
	ReminderWindow    time.Duration

	ProbeURL string

	HeartbeatLogPath string
	LowStockLogPath  string
	ReportLogPath    string
	ReminderLogPath  string
	AuditLogPath     string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "crm_records"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8030),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "crm_records"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Brokers:       splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			EventTopic:    getEnv("KAFKA_EVENT_TOPIC", "crm_events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "crm-audit"),
		},
		Policy: PolicyConfig{
			EnforceUniqueProductName: getEnvAsBool("POLICY_UNIQUE_PRODUCT_NAME", true),
			RequirePhone:             getEnvAsBool("POLICY_REQUIRE_PHONE", false),
		},
		Jobs: JobsConfig{
			HeartbeatInterval: getEnvAsDuration("JOB_HEARTBEAT_INTERVAL", 5*time.Minute),
			LowStockInterval:  getEnvAsDuration("JOB_LOW_STOCK_INTERVAL", 12*time.Hour),
			ReportInterval:    getEnvAsDuration("JOB_REPORT_INTERVAL", 7*24*time.Hour),
			ReminderInterval:  getEnvAsDuration("JOB_REMINDER_INTERVAL", 24*time.Hour),
			LowStockThreshold: getEnvAsInt("JOB_LOW_STOCK_THRESHOLD", 10),
			RestockIncrement:  getEnvAsInt("JOB_RESTOCK_INCREMENT", 10),
			ReminderWindow:    getEnvAsDuration("JOB_REMINDER_WINDOW", 7*24*time.Hour),
			ProbeURL:          getEnv("JOB_PROBE_URL", "http://localhost:8030/health"),
			HeartbeatLogPath:  getEnv("JOB_HEARTBEAT_LOG", "/tmp/crm_heartbeat_log.txt"),
			LowStockLogPath:   getEnv("JOB_LOW_STOCK_LOG", "/tmp/low_stock_updates_log.txt"),
			ReportLogPath:     getEnv("JOB_REPORT_LOG", "/tmp/crm_report_log.txt"),
			ReminderLogPath:   getEnv("JOB_REMINDER_LOG", "/tmp/order_reminders_log.txt"),
			AuditLogPath:      getEnv("JOB_AUDIT_LOG", "/tmp/crm_event_audit_log.txt"),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
		return fmt.Errorf("database config is incomplete")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}
	if c.Jobs.LowStockThreshold < 0 || c.Jobs.RestockIncrement <= 0 {
		return fmt.Errorf("low-stock job config is invalid")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
