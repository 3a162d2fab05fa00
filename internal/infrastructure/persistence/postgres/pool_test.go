package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"crm_records/internal/config"

	"github.com/stretchr/testify/require"
)

func TestNewPool_WithEnv(t *testing.T) {
	if os.Getenv("CRM_TEST_DB") == "" {
		t.Skip("CRM_TEST_DB not set; skipping database integration test")
	}

	cfg, err := config.Load()
	require.NoError(t, err, "load config failed")

	pool, err := NewPool(cfg.DB)
	require.NoError(t, err, "NewPool failed")
	require.NotNil(t, pool, "pool should not be nil")

	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, pool.Ping(ctx), "ping database failed")
	require.NoError(t, EnsureSchema(ctx, pool), "schema bootstrap failed")
}
