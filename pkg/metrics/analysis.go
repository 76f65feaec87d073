package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AnalysisMetrics records timings and outcomes for correlation analysis requests.
type AnalysisMetrics struct {
	duration    *prometheus.HistogramVec
	slaBreaches *prometheus.CounterVec
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
}

// NewAnalysisMetrics registers the analysis metrics on the provided registerer.
func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	if reg == nil {
		return &AnalysisMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Duration of correlation analysis requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	slaBreaches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_sla_breaches",
		Help: "Analysis requests that exceeded the response-time SLA.",
	}, []string{"endpoint"})
	cacheHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_cache_hits",
		Help: "Analysis responses served from cache.",
	}, []string{"endpoint"})
	cacheMisses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_cache_misses",
		Help: "Analysis responses computed fresh.",
	}, []string{"endpoint"})
	reg.MustRegister(duration, slaBreaches, cacheHits, cacheMisses)
	return &AnalysisMetrics{
		duration:    duration,
		slaBreaches: slaBreaches,
		cacheHits:   cacheHits,
		cacheMisses: cacheMisses,
	}
}

// ObserveDuration records the duration for the named endpoint.
func (a *AnalysisMetrics) ObserveDuration(endpoint string, duration time.Duration) {
	if a == nil || a.duration == nil {
		return
	}
	a.duration.WithLabelValues(normalizeLabel(endpoint)).Observe(duration.Seconds())
}

// IncSLABreach increments the SLA breach counter for the named endpoint.
func (a *AnalysisMetrics) IncSLABreach(endpoint string) {
	if a == nil || a.slaBreaches == nil {
		return
	}
	a.slaBreaches.WithLabelValues(normalizeLabel(endpoint)).Inc()
}

// IncCacheHit increments the cache hit counter for the named endpoint.
func (a *AnalysisMetrics) IncCacheHit(endpoint string) {
	if a == nil || a.cacheHits == nil {
		return
	}
	a.cacheHits.WithLabelValues(normalizeLabel(endpoint)).Inc()
}

// IncCacheMiss increments the cache miss counter for the named endpoint.
func (a *AnalysisMetrics) IncCacheMiss(endpoint string) {
	if a == nil || a.cacheMisses == nil {
		return
	}
	a.cacheMisses.WithLabelValues(normalizeLabel(endpoint)).Inc()
}

func normalizeLabel(endpoint string) string {
	if endpoint == "" {
		return "unknown"
	}
	return endpoint
}
