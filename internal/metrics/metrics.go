package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

const namespace = "gridgame"

const (
	OutcomeWin  = "win"
	OutcomeDraw = "draw"
)

type Metrics struct {
	moves *prometheus.CounterVec
	games *prometheus.CounterVec
}

// New - creates the game counters and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "moves_total",
				Help:      "Move attempts by feedback.",
			},
			[]string{"feedback"},
		),
		games: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "games_total",
				Help:      "Finished games by variant and outcome.",
			},
			[]string{"variant", "outcome"},
		),
	}

	for _, collector := range []prometheus.Collector{m.moves, m.games} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return m, nil
}

func (that *Metrics) ObserveMove(feedback entity.Feedback) {
	that.moves.WithLabelValues(feedback.String()).Inc()
}

func (that *Metrics) ObserveResult(result entity.Result) {
	outcome := OutcomeWin
	if result.IsDraw() {
		outcome = OutcomeDraw
	}

	that.games.WithLabelValues(result.Variant, outcome).Inc()
}
