package observability

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/predict", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/predict", "POST", 200, 30*time.Millisecond)
	m.RecordError("/predict", "POST", "INTERNAL_ERROR")
	m.RecordPrediction("Refund", "urgent")
	m.RecordCacheLookup(true)
	m.RecordCacheLookup(false)
	m.RecordCacheLookup(false)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/predict|POST|200"])
	assert.Equal(t, int64(20), snap.AvgLatencyMillis["/predict|POST|200"])
	assert.Equal(t, int64(1), snap.Errors["/predict|POST|INTERNAL_ERROR"])
	assert.Equal(t, int64(1), snap.Predictions["Refund|urgent"])
	assert.Equal(t, int64(1), snap.CacheHits)
	assert.Equal(t, int64(2), snap.CacheMisses)

	m.RecordPrediction("Refund", "urgent")
	assert.Equal(t, int64(1), snap.Predictions["Refund|urgent"], "snapshot is a copy")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	m.RecordPrediction("Other", "normal")
	m.RecordCacheLookup(true)
	assert.Empty(t, m.Snapshot().Requests)
}

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	metrics := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))

	var seen string
	app.Get("/ping", func(c *fiber.Ctx) error {
		seen = RequestID(c)
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, resp.Header.Get("X-Request-ID"))

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))

	assert.Equal(t, int64(2), metrics.Snapshot().Requests["/ping|GET|200"])
}
