package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/metrics"
)

// SLA bounds each request with a response-time deadline. Handlers see the deadline
// through the request context; breaches are counted and logged but the response is
// still written by whoever noticed the expired context first.
func SLA(timeout time.Duration, m *metrics.AnalysisMetrics, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))
			elapsed := time.Since(start)

			m.ObserveDuration(r.URL.Path, elapsed)
			if timeout > 0 && elapsed > timeout {
				m.IncSLABreach(r.URL.Path)
				if logg != nil {
					warnCtx := logg.WithFields(r.Context(), map[string]any{
						"path":        r.URL.Path,
						"duration_ms": elapsed.Milliseconds(),
						"sla_ms":      timeout.Milliseconds(),
					})
					logg.Warn(warnCtx, "response-time sla breached")
				}
			}
		})
	}
}
