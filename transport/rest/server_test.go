package rest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/rocketscienceinc/gridgame/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	m.ObserveMove(entity.FeedbackOutOfBounds)

	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), "0", reg)

	t.Run("Ping", func(t *testing.T) {
		// When: calling /ping
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		// Then: it answers pong
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("Metrics", func(t *testing.T) {
		// When: scraping /metrics
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		// Then: the game counters are exposed
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `gridgame_moves_total{feedback="out_of_bounds"} 1`)
	})
}

func TestPingHandler_MethodNotAllowed(t *testing.T) {
	// When: posting to /ping
	rec := httptest.NewRecorder()
	pingHandler(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))

	// Then: only GET and HEAD are allowed
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}
