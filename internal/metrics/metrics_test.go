package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("Counts moves and results", func(t *testing.T) {
		// Given: metrics on a fresh registry
		reg := prometheus.NewRegistry()
		m, err := New(reg)
		require.NoError(t, err)

		// When: observing a few moves and two games
		m.ObserveMove(entity.FeedbackValid)
		m.ObserveMove(entity.FeedbackValid)
		m.ObserveMove(entity.FeedbackOccupied)
		m.ObserveResult(entity.Result{Variant: "tictactoe", Winner: "X"})
		m.ObserveResult(entity.Result{Variant: "tictactoe"})

		// Then: the counters reflect them
		assert.InDelta(t, 2, testutil.ToFloat64(m.moves.WithLabelValues("valid")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.moves.WithLabelValues("occupied")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.games.WithLabelValues("tictactoe", OutcomeWin)), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.games.WithLabelValues("tictactoe", OutcomeDraw)), 0)
	})

	t.Run("Registering twice fails", func(t *testing.T) {
		// Given: a registry that already has the counters
		reg := prometheus.NewRegistry()
		_, err := New(reg)
		require.NoError(t, err)

		// When: registering them again
		_, err = New(reg)

		// Then: an error is returned
		require.Error(t, err)
	})
}
