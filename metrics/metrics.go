// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Verdict sources
const (
	SourceAI    = "ai"
	SourceRules = "rules"
)

var (
	httpDurationBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	upstreamDurationBuckets = []float64{.25, .5, 1, 2, 4, 8, 15, 30}
)

// Metrics holds all collectors registered for the service
type Metrics struct {
	registry *prometheus.Registry

	ClassificationsTotal *prometheus.CounterVec
	FallbacksTotal       *prometheus.CounterVec
	UpstreamDuration     *prometheus.HistogramVec
	LettersTotal         *prometheus.CounterVec
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
}

// New creates and registers every collector on a private registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ClassificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lawpick_classifications_total",
			Help: "Verdicts produced, by case category and source",
		}, []string{"category", "source"}),
		FallbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lawpick_upstream_fallbacks_total",
			Help: "Times the rule-based path replaced the generative upstream, by operation and reason",
		}, []string{"operation", "reason"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lawpick_upstream_duration_seconds",
			Help:    "Generative upstream call latency",
			Buckets: upstreamDurationBuckets,
		}, []string{"operation"}),
		LettersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lawpick_letters_total",
			Help: "Demand letters produced, by source and whether they were archived",
		}, []string{"source", "archived"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lawpick_http_requests_total",
			Help: "HTTP requests handled",
		}, []string{"method", "path", "status_code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lawpick_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: httpDurationBuckets,
		}, []string{"method", "path"}),
	}

	m.registry.MustRegister(
		m.ClassificationsTotal,
		m.FallbacksTotal,
		m.UpstreamDuration,
		m.LettersTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// The helpers below are nil-safe so services can run without metrics.

// ObserveClassification counts a produced verdict
func (m *Metrics) ObserveClassification(category, source string) {
	if m == nil {
		return
	}
	m.ClassificationsTotal.WithLabelValues(category, source).Inc()
}

// ObserveFallback counts a fallback to the rule-based path
func (m *Metrics) ObserveFallback(operation, reason string) {
	if m == nil {
		return
	}
	m.FallbacksTotal.WithLabelValues(operation, reason).Inc()
}

// ObserveUpstream records the latency of a generative call
func (m *Metrics) ObserveUpstream(operation string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveLetter counts a produced demand letter
func (m *Metrics) ObserveLetter(source string, archived bool) {
	if m == nil {
		return
	}
	m.LettersTotal.WithLabelValues(source, strconv.FormatBool(archived)).Inc()
}

// ObserveHTTP records one handled request
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
