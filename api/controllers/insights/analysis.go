package insights

import (
	"context"
	"errors"
	"net/http"

	"github.com/storepulse/storepulse-backend/api/responses"
	insightssvc "github.com/storepulse/storepulse-backend/internal/insights"
	"github.com/storepulse/storepulse-backend/pkg/clock"
	"github.com/storepulse/storepulse-backend/pkg/config"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/metrics"
)

const analysisEndpoint = "analysis"

// Analysis serves the correlation analysis for a store and date window.
func Analysis(
	service insightssvc.Service,
	cache *ResponseCache,
	m *metrics.AnalysisMetrics,
	clk clock.Clock,
	cfg config.AnalysisConfig,
	logg *logger.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, err := resolveAnalysisRequest(r, clk.Now().UTC(), cfg)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if !cfg.CacheDisabled {
			if cached, ok := cache.Get(ctx, req); ok {
				m.IncCacheHit(analysisEndpoint)
				responses.WriteSuccess(w, cached)
				return
			}
			m.IncCacheMiss(analysisEndpoint)
		}

		result, err := service.Analyze(ctx, req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				err = pkgerrors.Wrap(pkgerrors.CodeTimeout, err, "analysis deadline exceeded")
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if !cfg.CacheDisabled {
			cache.Store(ctx, req, result)
		}
		responses.WriteSuccess(w, result)
	}
}
