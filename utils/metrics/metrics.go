// Package metrics provides Prometheus metrics for the receipt service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "receipt"

// Trigger labels.
const (
	TriggerOnDemand  = "on_demand"
	TriggerScheduled = "scheduled"
	TriggerBackfill  = "backfill"
)

// Outcome labels.
const (
	OutcomeGenerated = "generated"
	OutcomeNoData    = "no_data"
	OutcomeFailed    = "failed"
)

var (
	// GenerationsTotal counts report generations by trigger and outcome.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Total number of weekly report generations",
		},
		[]string{"trigger", "outcome"},
	)

	// GenerationDuration measures a full generation, lock wait included.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Duration of weekly report generations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"trigger"},
	)

	EntriesPerReport = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "entries_per_report",
			Help:      "Number of entries aggregated into a report",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 10, 14, 21},
		},
	)

	// BatchUsers reports the per-outcome user counts of the last batch run.
	BatchUsers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "batch_last_run_users",
			Help:      "Users processed by the last weekly batch, by outcome",
		},
		[]string{"outcome"},
	)

	BatchLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "batch_last_run_timestamp_seconds",
			Help:      "Unix time at which the last weekly batch finished",
		},
	)

	// ErrorsTotal counts errors by operation and error code.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of errors",
		},
		[]string{"operation", "error_type"},
	)
)

// RecordGeneration records one generation attempt.
func RecordGeneration(trigger, outcome string, duration float64) {
	GenerationsTotal.WithLabelValues(trigger, outcome).Inc()
	GenerationDuration.WithLabelValues(trigger).Observe(duration)
}

func RecordEntries(n int) {
	EntriesPerReport.Observe(float64(n))
}

// RecordBatch publishes the summary of a finished batch run.
func RecordBatch(generated, skipped, failed int, finishedAtUnix float64) {
	BatchUsers.WithLabelValues(OutcomeGenerated).Set(float64(generated))
	BatchUsers.WithLabelValues(OutcomeNoData).Set(float64(skipped))
	BatchUsers.WithLabelValues(OutcomeFailed).Set(float64(failed))
	BatchLastRunTimestamp.Set(finishedAtUnix)
}

// RecordError records an error.
func RecordError(operation, errorType string) {
	ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
