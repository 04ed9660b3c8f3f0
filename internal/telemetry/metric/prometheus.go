package metric

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "cribcrack"

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	CandidatesTried   *prometheus.CounterVec
	CandidatesSkipped *prometheus.CounterVec
	Recoveries        *prometheus.CounterVec
	SearchDuration    *prometheus.HistogramVec
}

// NewRegistry creates a registry with every cribcrack metric registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		CandidatesTried: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_tried_total",
			Help:      "Candidate keys decoded and checked for the known fragment.",
		}, []string{"variant"}),
		CandidatesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_skipped_total",
			Help:      "Candidate keys skipped because an earlier candidate had the same key.",
		}, []string{"variant"}),
		Recoveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recoveries_total",
			Help:      "Finished key recoveries by outcome.",
		}, []string{"variant", "outcome"}),
		SearchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of key recoveries.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"variant"}),
	}

	r.registry.MustRegister(
		r.CandidatesTried,
		r.CandidatesSkipped,
		r.Recoveries,
		r.SearchDuration,
		NewBuildInfoCollector(),
		collectors.NewGoCollector(),
	)
	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// AddTried adds n tried candidates for variant.
func (r *Registry) AddTried(variant string, n int) {
	if n > 0 {
		r.CandidatesTried.WithLabelValues(variant).Add(float64(n))
	}
}

// AddSkipped adds n skipped candidates for variant.
func (r *Registry) AddSkipped(variant string, n int) {
	if n > 0 {
		r.CandidatesSkipped.WithLabelValues(variant).Add(float64(n))
	}
}

// ObserveRecovery records a finished recovery.
func (r *Registry) ObserveRecovery(variant, outcome string, elapsed time.Duration) {
	r.Recoveries.WithLabelValues(variant, outcome).Inc()
	r.SearchDuration.WithLabelValues(variant).Observe(elapsed.Seconds())
}

// WriteTextfile writes every metric to path in the text exposition
// format. The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
