package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	assert.NotNil(t, m.BoundaryRequests)
	assert.NotNil(t, m.BoundaryDuration)
	assert.NotNil(t, m.CartOperations)
	assert.NotNil(t, m.Checkouts)
	assert.NotNil(t, m.SessionActive)
}

func TestTransport(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders/42/ship" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := &http.Client{Transport: m.Transport(nil)}

	resp, err := client.Get(ts.URL + "/api/products")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.Post(ts.URL+"/api/orders/42/ship", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BoundaryRequests.WithLabelValues("GET", "/api/products", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BoundaryRequests.WithLabelValues("POST", "/api/orders/:id/ship", "400")))
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "/api/products", endpointLabel("/api/products"))
	assert.Equal(t, "/api/inventory/:id", endpointLabel("/api/inventory/7"))
	assert.Equal(t, "/api/admin/users/:id/toggle", endpointLabel("/api/admin/users/12/toggle"))
}

func TestBusinessCounters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.CartOp("add")
	m.CartOp("add")
	m.Checkout("success")
	m.SetSession(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CartOperations.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Checkouts.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionActive))

	m.SetSession(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SessionActive))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CartOp("add")
		m.Checkout("failure")
		m.SetSession(true)
		_ = m.Transport(nil)
	})
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.CartOp("remove")

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "storefront_cart_operations_total")
}
