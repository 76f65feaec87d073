package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/storepulse/storepulse-backend/pkg/metrics"
)

func TestSLASetsDeadline(t *testing.T) {
	m := metrics.NewAnalysisMetrics(prometheus.NewRegistry())

	var sawDeadline bool
	handler := SLA(time.Second, m, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/insights/analysis", nil))

	if !sawDeadline {
		t.Error("handler context should carry the SLA deadline")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSLACountsBreaches(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewAnalysisMetrics(reg)

	handler := SLA(time.Nanosecond, m, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var breaches float64
	for _, family := range families {
		if family.GetName() != "analysis_sla_breaches" {
			continue
		}
		for _, metric := range family.GetMetric() {
			breaches += metric.GetCounter().GetValue()
		}
	}
	if breaches != 1 {
		t.Fatalf("expected 1 recorded breach, got %v", breaches)
	}
}

func TestSLAZeroTimeoutPassesThrough(t *testing.T) {
	m := metrics.NewAnalysisMetrics(prometheus.NewRegistry())

	var sawDeadline bool
	handler := SLA(0, m, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawDeadline = r.Context().Deadline()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/any", nil))

	if sawDeadline {
		t.Error("zero timeout must not impose a deadline")
	}
}
