package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_HOST", "")
	t.Setenv("MODEL_CLASSIFIER_FILE", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("MODEL_DIR", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_CLIENTS", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("REDIS_TIMEOUT_MS", "")
	t.Setenv("POSTGRES_APPLICATION_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, "models", cfg.Model.Dir)
	assert.Equal(t, "svm.json", cfg.Model.ClassifierFile)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Empty(t, cfg.Redis.Addr)
	assert.False(t, cfg.Auth.Enabled())
	assert.Empty(t, cfg.Auth.Clients)
	assert.Equal(t, 250*time.Millisecond, cfg.Redis.Timeout())
	assert.Equal(t, "ticket-classifier", cfg.Postgres.ApplicationName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("MODEL_DIR", "/srv/models")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("REDIS_CACHE_TTL_HOURS", "2")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AUTH_CLIENTS", "helpdesk:$2a$10$abc, crm:$2a$10$def")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.App.Addr())
	assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 2*time.Hour, cfg.Redis.CacheTTL())
	assert.Equal(t, "/srv/models/svm.json", cfg.Model.Path(cfg.Model.ClassifierFile))
	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, map[string]string{"helpdesk": "$2a$10$abc", "crm": "$2a$10$def"}, cfg.Auth.Clients)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("REDIS_DB", "0")
	t.Setenv("AUTH_CLIENTS", "no-separator")
	_, err = Load()
	assert.Error(t, err)
}

func TestModelPathKeepsAbsoluteNames(t *testing.T) {
	m := ModelConfig{Dir: "models"}
	assert.Equal(t, "/abs/svm.json", m.Path("/abs/svm.json"))
	assert.Equal(t, "models/tfidf_word.json", m.Path("tfidf_word.json"))
}

func TestRequestTimeoutDisabled(t *testing.T) {
	assert.Zero(t, AppConfig{RequestTimeoutSeconds: 0}.RequestTimeout())
}
