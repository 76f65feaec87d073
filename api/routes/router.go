package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storepulse/storepulse-backend/api/controllers"
	ingestcontrollers "github.com/storepulse/storepulse-backend/api/controllers/ingest"
	insightscontrollers "github.com/storepulse/storepulse-backend/api/controllers/insights"
	"github.com/storepulse/storepulse-backend/api/middleware"
	ingestsvc "github.com/storepulse/storepulse-backend/internal/ingest"
	insightssvc "github.com/storepulse/storepulse-backend/internal/insights"
	"github.com/storepulse/storepulse-backend/pkg/clock"
	"github.com/storepulse/storepulse-backend/pkg/config"
	"github.com/storepulse/storepulse-backend/pkg/db"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/metrics"
	redispkg "github.com/storepulse/storepulse-backend/pkg/redis"
)

// RouterParams carries everything the HTTP surface depends on.
type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redispkg.Client
	Clock    clock.Clock
	Metrics  *metrics.AnalysisMetrics
	Gatherer prometheus.Gatherer
	Insights insightssvc.Service
	Ingest   ingestsvc.Service
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(),
	)

	clk := p.Clock
	if clk == nil {
		clk = clock.System()
	}

	var redisPinger redispkg.Pinger
	if p.Redis != nil {
		redisPinger = p.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.DB, redisPinger))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	cache := insightscontrollers.NewResponseCache(p.Redis, p.Logger, p.Config.Analysis.CacheTTL)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/insights", func(r chi.Router) {
			r.With(middleware.SLA(p.Config.Analysis.SLATimeout, p.Metrics, p.Logger)).
				Get("/analysis", insightscontrollers.Analysis(p.Insights, cache, p.Metrics, clk, p.Config.Analysis, p.Logger))
		})

		r.Route("/ingest", func(r chi.Router) {
			r.Post("/sales", ingestcontrollers.IngestSales(p.Ingest, p.Logger))
			r.Post("/weather", ingestcontrollers.IngestWeather(p.Ingest, p.Logger))
			r.Post("/events", ingestcontrollers.IngestEvents(p.Ingest, p.Logger))
		})
	})

	return r
}
