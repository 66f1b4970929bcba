// Package metrics provides Prometheus metrics for the matching engine.
package metrics

import (
	"net/http"
	"time"

	"agrimatch/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agrimatch"

// Recorder implements service.MatchMetrics on a Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry

	generationsTotal   *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	candidatesFound    *prometheus.HistogramVec
	pairingsUpserted   prometheus.Counter
	responsesTotal     *prometheus.CounterVec
	pairingsSwept      prometheus.Counter
}

var _ service.MatchMetrics = (*Recorder)(nil)

// NewRecorder registers the matching metrics plus Go and process collectors
// on a dedicated registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Recorder{
		registry: registry,
		generationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "runs_total",
				Help:      "Total number of match generation runs by requesting role",
			},
			[]string{"role"},
		),
		generationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "duration_seconds",
				Help:      "Duration of match generation runs in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"role"},
		),
		candidatesFound: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "candidates",
				Help:      "Number of candidates above the score threshold per run",
				Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
			[]string{"role"},
		),
		pairingsUpserted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pairings",
				Name:      "upserted_total",
				Help:      "Total number of pairings inserted or refreshed",
			},
		),
		responsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pairings",
				Name:      "responses_total",
				Help:      "Total number of pairing responses by side, decision and resulting status",
			},
			[]string{"side", "decision", "status"},
		),
		pairingsSwept: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pairings",
				Name:      "swept_total",
				Help:      "Total number of expired pairings removed",
			},
		),
	}

	registry.MustRegister(
		r.generationsTotal,
		r.generationDuration,
		r.candidatesFound,
		r.pairingsUpserted,
		r.responsesTotal,
		r.pairingsSwept,
	)

	return r
}

func (r *Recorder) ObserveGeneration(role string, candidates int, duration time.Duration) {
	r.generationsTotal.WithLabelValues(role).Inc()
	r.generationDuration.WithLabelValues(role).Observe(duration.Seconds())
	r.candidatesFound.WithLabelValues(role).Observe(float64(candidates))
}

func (r *Recorder) IncPairingsUpserted(count int) {
	if count > 0 {
		r.pairingsUpserted.Add(float64(count))
	}
}

func (r *Recorder) IncResponses(side, decision, status string) {
	r.responsesTotal.WithLabelValues(side, decision, status).Inc()
}

func (r *Recorder) AddPairingsSwept(count int64) {
	if count > 0 {
		r.pairingsSwept.Add(float64(count))
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
