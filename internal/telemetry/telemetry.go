package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Telemetry tracks request and provider metrics for the ask pipeline.
// Collectors live on their own registry so multiple instances can coexist
// in tests.
type Telemetry struct {
	registry *prometheus.Registry

	askRequests    *prometheus.CounterVec
	askDuration    prometheus.Histogram
	searchAttempts *prometheus.CounterVec
	searchFailures *prometheus.CounterVec
	searchResults  *prometheus.CounterVec
	llmAttempts    *prometheus.CounterVec
	llmFailures    *prometheus.CounterVec
}

func New() *Telemetry {
	t := &Telemetry{
		registry: prometheus.NewRegistry(),
		askRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmind_ask_requests_total",
			Help: "Ask requests by outcome.",
		}, []string{"outcome"}),
		askDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsmind_ask_duration_seconds",
			Help:    "End to end ask latency.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		searchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmind_search_attempts_total",
			Help: "Search provider attempts.",
		}, []string{"provider"}),
		searchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmind_search_failures_total",
			Help: "Search provider failures (transport, status or decode).",
		}, []string{"provider"}),
		searchResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmind_search_results_total",
			Help: "Articles returned per search provider.",
		}, []string{"provider"}),
		llmAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmind_generation_attempts_total",
			Help: "Generation provider attempts.",
		}, []string{"provider"}),
		llmFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmind_generation_failures_total",
			Help: "Generation provider failures.",
		}, []string{"provider"}),
	}
	t.registry.MustRegister(
		t.askRequests, t.askDuration,
		t.searchAttempts, t.searchFailures, t.searchResults,
		t.llmAttempts, t.llmFailures,
	)
	return t
}

// Handler serves the metrics endpoint for this instance's registry.
func (t *Telemetry) Handler() http.Handler {
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})
}

func (t *Telemetry) RecordAsk(outcome string, d time.Duration) {
	t.askRequests.WithLabelValues(outcome).Inc()
	t.askDuration.Observe(d.Seconds())
}

func (t *Telemetry) RecordSearch(provider string, results int, err error) {
	t.searchAttempts.WithLabelValues(provider).Inc()
	if err != nil {
		t.searchFailures.WithLabelValues(provider).Inc()
		return
	}
	t.searchResults.WithLabelValues(provider).Add(float64(results))
}

func (t *Telemetry) RecordGeneration(provider string, err error) {
	t.llmAttempts.WithLabelValues(provider).Inc()
	if err != nil {
		t.llmFailures.WithLabelValues(provider).Inc()
	}
}
