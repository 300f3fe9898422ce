package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics represents the collection of storefront client metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	BoundaryRequests *prometheus.CounterVec
	BoundaryDuration *prometheus.HistogramVec
	CartOperations   *prometheus.CounterVec
	Checkouts        *prometheus.CounterVec
	SessionActive    prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// uses a fresh private registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{gatherer: reg}

	m.BoundaryRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_boundary_requests_total",
			Help: "Total number of requests sent to remote boundaries",
		},
		[]string{"method", "endpoint", "outcome"},
	)

	m.BoundaryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_boundary_request_duration_seconds",
			Help:    "Duration of boundary requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	m.CartOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Cart mutations by operation",
		},
		[]string{"op"},
	)

	m.Checkouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkouts_total",
			Help: "Checkout attempts by outcome",
		},
		[]string{"outcome"},
	)

	m.SessionActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_session_active",
			Help: "1 while a user is logged in",
		},
	)

	reg.MustRegister(
		m.BoundaryRequests,
		m.BoundaryDuration,
		m.CartOperations,
		m.Checkouts,
		m.SessionActive,
	)

	return m
}

// CartOp counts a cart mutation.
func (m *Metrics) CartOp(op string) {
	if m == nil {
		return
	}
	m.CartOperations.WithLabelValues(op).Inc()
}

// Checkout counts a checkout outcome.
func (m *Metrics) Checkout(outcome string) {
	if m == nil {
		return
	}
	m.Checkouts.WithLabelValues(outcome).Inc()
}

// SetSession records whether a session is active.
func (m *Metrics) SetSession(active bool) {
	if m == nil {
		return
	}
	if active {
		m.SessionActive.Set(1)
	} else {
		m.SessionActive.Set(0)
	}
}

var idSegment = regexp.MustCompile(`/\d+(/|$)`)

// endpointLabel collapses numeric path segments so ids do not explode label cardinality.
func endpointLabel(path string) string {
	for idSegment.MatchString(path) {
		path = idSegment.ReplaceAllString(path, "/:id$1")
	}
	return path
}

// Transport wraps next so every boundary request is counted and timed.
func (m *Metrics) Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if m == nil {
		return next
	}
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()
		endpoint := endpointLabel(r.URL.Path)

		resp, err := next.RoundTrip(r)

		outcome := "error"
		if err == nil {
			outcome = strconv.Itoa(resp.StatusCode)
		}
		m.BoundaryRequests.WithLabelValues(r.Method, endpoint, outcome).Inc()
		m.BoundaryDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		return resp, err
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Handler returns the Prometheus HTTP handler
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
