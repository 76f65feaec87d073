package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	ingestsvc "github.com/storepulse/storepulse-backend/internal/ingest"
	"github.com/storepulse/storepulse-backend/internal/insights/types"
	"github.com/storepulse/storepulse-backend/pkg/config"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/metrics"
)

type stubInsights struct{}

func (stubInsights) Analyze(context.Context, types.AnalysisRequest) (*types.AnalysisResponse, error) {
	return &types.AnalysisResponse{
		Correlations:   []types.CorrelationResult{},
		HeatmapData:    []types.HeatmapCell{},
		ComparisonData: []types.ComparisonRow{},
	}, nil
}

type stubIngest struct{}

func (stubIngest) IngestSales(context.Context, []ingestsvc.SalesRowInput) (*ingestsvc.Result, error) {
	return &ingestsvc.Result{Accepted: 1}, nil
}

func (stubIngest) IngestWeather(context.Context, []ingestsvc.WeatherRowInput) (*ingestsvc.Result, error) {
	return &ingestsvc.Result{Accepted: 1}, nil
}

func (stubIngest) IngestEvents(context.Context, []ingestsvc.EventRowInput) (*ingestsvc.Result, error) {
	return &ingestsvc.Result{Accepted: 1}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	registry := prometheus.NewRegistry()
	cfg := &config.Config{
		App: config.AppConfig{Env: "development", Port: "8080"},
		Analysis: config.AnalysisConfig{
			DefaultPreset: "30d",
			MaxWindowDays: 366,
			CacheDisabled: true,
		},
	}
	return NewRouter(RouterParams{
		Config:   cfg,
		Logger:   logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Metrics:  metrics.NewAnalysisMetrics(registry),
		Gatherer: registry,
		Insights: stubInsights{},
		Ingest:   stubIngest{},
	})
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("request id header should be set")
	}
}

func TestRouterAnalysisRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/insights/analysis?from=2025-06-01&to=2025-06-30", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouterIngestRoute(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"rows":[{"date":"2025-06-02","store_id":"store-1","revenue_ex_tax":1000}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest/sales", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
