package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/config"
)

func TestMigrationFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700))

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_a.sql", "002_b.sql"}, files)

	_, err = migrationFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestRepoMigrationsPresent(t *testing.T) {
	files, err := migrationFiles("../../migrations")
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}

func TestDisabledBackends(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	pg, err := NewPostgres(ctx, config.PostgresConfig{}, logger)
	require.NoError(t, err)
	assert.False(t, pg.Enabled())
	assert.Error(t, pg.Ping(ctx))
	assert.Nil(t, pg.PoolHandle())
	pg.Close()
	assert.NoError(t, RunMigrations(ctx, pg.PoolHandle(), "unused", logger))

	r := NewRedis(config.RedisConfig{}, logger)
	assert.False(t, r.Enabled())
	assert.Error(t, r.Ping(ctx))
	r.Close()
}

func TestPoolConfig(t *testing.T) {
	poolCfg, err := poolConfig(config.PostgresConfig{
		DSN:             "postgres://app:pw@localhost:5432/tickets?sslmode=disable",
		ApplicationName: "ticket-classifier",
		MaxConns:        7,
		MinConns:        1,
		ConnMaxIdleSec:  30,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(7), poolCfg.MaxConns)
	assert.Equal(t, int32(1), poolCfg.MinConns)
	assert.Equal(t, 30*time.Second, poolCfg.MaxConnIdleTime)
	assert.Equal(t, "tickets", poolCfg.ConnConfig.Database)
	assert.Equal(t, "ticket-classifier", poolCfg.ConnConfig.RuntimeParams["application_name"])

	_, err = poolConfig(config.PostgresConfig{DSN: "host=localhost port=notaport"})
	assert.Error(t, err)
}

func TestRedisOptionsFailFast(t *testing.T) {
	opts := redisOptions(config.RedisConfig{Addr: "localhost:6379", DB: 2, TimeoutMillis: 100})
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 100*time.Millisecond, opts.DialTimeout)
	assert.Equal(t, 100*time.Millisecond, opts.ReadTimeout)
	assert.Equal(t, 100*time.Millisecond, opts.WriteTimeout)
	assert.Equal(t, -1, opts.MaxRetries)
}
