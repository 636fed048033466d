package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveClassification(t *testing.T) {
	m := New()
	m.ObserveClassification("RENTAL", SourceRules)
	m.ObserveClassification("RENTAL", SourceRules)
	m.ObserveClassification("MONEY", SourceAI)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ClassificationsTotal.WithLabelValues("RENTAL", SourceRules)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClassificationsTotal.WithLabelValues("MONEY", SourceAI)))
}

func TestObserveFallbackAndLetter(t *testing.T) {
	m := New()
	m.ObserveFallback("analyze", "timeout")
	m.ObserveLetter(SourceRules, true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("analyze", "timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LettersTotal.WithLabelValues(SourceRules, "true")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveClassification("OTHER", SourceRules)
		m.ObserveFallback("analyze", "timeout")
		m.ObserveUpstream("analyze", time.Second)
		m.ObserveLetter(SourceAI, false)
		m.ObserveHTTP("GET", "/health", 200, time.Millisecond)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveHTTP("POST", "/api/analyze", 200, 20*time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "lawpick_http_requests_total")
	assert.Contains(t, string(body), `path="/api/analyze"`)
}
