package insights

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/storepulse/storepulse-backend/internal/insights/types"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	redispkg "github.com/storepulse/storepulse-backend/pkg/redis"
)

const cacheScope = "analysis"

// ResponseCache keeps serialized analysis responses in Redis. Cache failures are
// logged and treated as misses; the analysis itself never depends on Redis health.
type ResponseCache struct {
	client *redispkg.Client
	logg   *logger.Logger
	ttl    time.Duration
}

// NewResponseCache wraps the redis client. A nil client disables caching.
func NewResponseCache(client *redispkg.Client, logg *logger.Logger, ttl time.Duration) *ResponseCache {
	return &ResponseCache{client: client, logg: logg, ttl: ttl}
}

func (c *ResponseCache) key(req types.AnalysisRequest) string {
	return c.client.CacheKey(cacheScope, cacheKeyParts(req)...)
}

// Get returns the cached response for the request scope, if present.
func (c *ResponseCache) Get(ctx context.Context, req types.AnalysisRequest) (*types.AnalysisResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.key(req))
	if err != nil {
		if !errors.Is(err, redispkg.Nil) && c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "analysis cache read failed")
		}
		return nil, false
	}
	var resp types.AnalysisResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		if c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "analysis cache entry corrupt")
		}
		return nil, false
	}
	return &resp, true
}

// Store saves the response under the request scope for the configured TTL.
func (c *ResponseCache) Store(ctx context.Context, req types.AnalysisRequest, resp *types.AnalysisResponse) {
	if c == nil || c.client == nil || resp == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(req), string(payload), c.ttl); err != nil && c.logg != nil {
		c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "analysis cache write failed")
	}
}
