package santa

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	drawResultStarted    = "started"
	drawResultInfeasible = "infeasible"
	drawResultConflict   = "conflict"
	drawResultError      = "error"
)

var (
	drawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "secret_santa_draws_total",
			Help: "Draw attempts by outcome",
		},
		[]string{"result"},
	)

	drawAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "secret_santa_draw_attempts",
		Help:    "Randomized permutations sampled per successful draw",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 200},
	})

	drawDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "secret_santa_draw_duration_seconds",
		Help:    "Time spent generating an assignment",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
)
