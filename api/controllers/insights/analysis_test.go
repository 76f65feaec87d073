package insights

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storepulse/storepulse-backend/internal/insights/types"
	"github.com/storepulse/storepulse-backend/pkg/clock"
	"github.com/storepulse/storepulse-backend/pkg/config"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/metrics"
)

type stubService struct {
	gotRequest types.AnalysisRequest
	response   *types.AnalysisResponse
	err        error
	calls      int
}

func (s *stubService) Analyze(_ context.Context, req types.AnalysisRequest) (*types.AnalysisResponse, error) {
	s.gotRequest = req
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func analysisConfig() config.AnalysisConfig {
	return config.AnalysisConfig{
		SLATimeout:     5 * time.Second,
		CacheTTL:       5 * time.Minute,
		MaxWindowDays:  366,
		DefaultPreset:  "30d",
		CacheDisabled:  true,
		IngestBatchMax: 1000,
	}
}

func testClock() clock.Clock {
	return clock.Fixed(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func emptyResponse() *types.AnalysisResponse {
	return &types.AnalysisResponse{
		Correlations:   []types.CorrelationResult{},
		HeatmapData:    []types.HeatmapCell{},
		ComparisonData: []types.ComparisonRow{},
	}
}

func TestAnalysisExplicitRange(t *testing.T) {
	svc := &stubService{response: emptyResponse()}
	handler := Analysis(svc, nil, metrics.NewAnalysisMetrics(nil), testClock(), analysisConfig(), testLogger())

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/insights/analysis?from=2025-06-01&to=2025-06-30&store_id=store-1&department=grocery", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := svc.gotRequest.StartDate.Format("2006-01-02"); got != "2025-06-01" {
		t.Errorf("unexpected start date %q", got)
	}
	if got := svc.gotRequest.EndDate.Format("2006-01-02"); got != "2025-06-30" {
		t.Errorf("unexpected end date %q", got)
	}
	if svc.gotRequest.StoreID != "store-1" || svc.gotRequest.Department != "grocery" {
		t.Errorf("scope not forwarded: %+v", svc.gotRequest)
	}
}

func TestAnalysisDefaultPreset(t *testing.T) {
	svc := &stubService{response: emptyResponse()}
	handler := Analysis(svc, nil, metrics.NewAnalysisMetrics(nil), testClock(), analysisConfig(), testLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/insights/analysis", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	window := svc.gotRequest.EndDate.Sub(svc.gotRequest.StartDate)
	if window != 29*24*time.Hour {
		t.Errorf("30d preset should span 30 inclusive days, got %v", window)
	}
}

func TestAnalysisRejectsHalfRange(t *testing.T) {
	svc := &stubService{response: emptyResponse()}
	handler := Analysis(svc, nil, metrics.NewAnalysisMetrics(nil), testClock(), analysisConfig(), testLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/insights/analysis?from=2025-06-01", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Error("service must not run for invalid params")
	}
}

func TestAnalysisRejectsOversizedWindow(t *testing.T) {
	svc := &stubService{response: emptyResponse()}
	handler := Analysis(svc, nil, metrics.NewAnalysisMetrics(nil), testClock(), analysisConfig(), testLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/insights/analysis?from=2023-01-01&to=2025-06-30", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized window, got %d", rec.Code)
	}
}

func TestAnalysisDependencyFailure(t *testing.T) {
	svc := &stubService{err: pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("conn refused"), "failed to fetch sales data")}
	handler := Analysis(svc, nil, metrics.NewAnalysisMetrics(nil), testClock(), analysisConfig(), testLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/insights/analysis?from=2025-06-01&to=2025-06-30", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestAnalysisDeadlineMapsToTimeout(t *testing.T) {
	svc := &stubService{err: context.DeadlineExceeded}
	handler := Analysis(svc, nil, metrics.NewAnalysisMetrics(nil), testClock(), analysisConfig(), testLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/insights/analysis?from=2025-06-01&to=2025-06-30", nil))

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", rec.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeTimeout) {
		t.Errorf("unexpected error code %q", envelope.Error.Code)
	}
}
