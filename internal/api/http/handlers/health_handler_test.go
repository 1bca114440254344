package handlers

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	enabled bool
	err     error
}

func (s stubPinger) Enabled() bool                  { return s.enabled }
func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func readyStatus(t *testing.T, h *HealthHandler) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/ready", h.Ready)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ready", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestReadySkipsDisabledDependencies(t *testing.T) {
	h := NewHealthHandler("svc", "v1", true, map[string]Pinger{
		"postgres": stubPinger{enabled: false, err: errors.New("never pinged")},
		"redis":    stubPinger{enabled: true},
	})
	status, body := readyStatus(t, h)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"redis":"ok"`)
	assert.NotContains(t, body, "postgres")
}

func TestReadyReportsFailingDependency(t *testing.T) {
	h := NewHealthHandler("svc", "v1", true, map[string]Pinger{
		"redis": stubPinger{enabled: true, err: errors.New("connection refused")},
	})
	status, body := readyStatus(t, h)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, body, "DEPENDENCY_UNAVAILABLE")
	assert.Contains(t, body, "connection refused")
}

func TestReadyWithoutModel(t *testing.T) {
	status, body := readyStatus(t, NewHealthHandler("svc", "v1", false, nil))
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, body, "not loaded")
}
