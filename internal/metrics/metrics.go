// Package metrics exposes Prometheus collectors for seating runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	// SeatingRuns counts seating runs by outcome.
	SeatingRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventflow",
		Subsystem: "seating",
		Name:      "runs_total",
		Help:      "Seating runs by outcome.",
	}, []string{"outcome"})

	// SeatingRunDuration observes the wall time of a full generate request,
	// including storage.
	SeatingRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "eventflow",
		Subsystem: "seating",
		Name:      "run_duration_seconds",
		Help:      "Duration of seating runs.",
		Buckets:   prometheus.DefBuckets,
	})

	// SeatingTables observes the number of tables opened per run.
	SeatingTables = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "eventflow",
		Subsystem: "seating",
		Name:      "tables_per_run",
		Help:      "Tables opened per seating run.",
		Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
	})

	// ParticipantsSeated counts participants placed by successful runs.
	ParticipantsSeated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventflow",
		Subsystem: "seating",
		Name:      "participants_seated_total",
		Help:      "Participants seated by successful runs.",
	})

	// ManualMoves counts manual single-participant overrides.
	ManualMoves = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventflow",
		Subsystem: "seating",
		Name:      "manual_moves_total",
		Help:      "Manual table moves applied outside the engine.",
	})
)

// ObserveRun records one seating run.
func ObserveRun(outcome string, started time.Time, tables, seated int) {
	SeatingRuns.WithLabelValues(outcome).Inc()
	SeatingRunDuration.Observe(time.Since(started).Seconds())
	if outcome != OutcomeOK {
		return
	}
	SeatingTables.Observe(float64(tables))
	ParticipantsSeated.Add(float64(seated))
}
