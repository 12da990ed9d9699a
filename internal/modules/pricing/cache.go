package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	logx "github.com/georgemunganga/printa-quotes/pkg/logger"
)

// QuoteCache is a short-TTL read-through cache for structured quote
// responses. Resolution is deterministic against an unchanged catalog, so a
// cached response equals a recomputed one. A nil client disables caching;
// cache failures are logged and treated as misses, never surfaced.
type QuoteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewQuoteCache(rdb *redis.Client, ttl time.Duration) *QuoteCache {
	return &QuoteCache{rdb: rdb, ttl: ttl}
}

func (c *QuoteCache) enabled() bool {
	return c != nil && c.rdb != nil && c.ttl > 0
}

func cacheKey(req StructuredRequest) string {
	return fmt.Sprintf("quote:structured:%s|%s|%s|%d",
		req.ProductName, req.PrintOption, req.DeliveryClass, req.Quantity)
}

func (c *QuoteCache) Get(ctx context.Context, req StructuredRequest) *QuoteResponse {
	if !c.enabled() {
		return nil
	}
	payload, err := c.rdb.Get(ctx, cacheKey(req)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logx.Warn().Err(err).Str("component", "quote_cache").Msg("cache read failed")
		}
		return nil
	}
	var resp QuoteResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		logx.Warn().Err(err).Str("component", "quote_cache").Msg("cached payload corrupt")
		return nil
	}
	return &resp
}

func (c *QuoteCache) Set(ctx context.Context, req StructuredRequest, resp *QuoteResponse) {
	if !c.enabled() || resp == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(req), payload, c.ttl).Err(); err != nil {
		logx.Warn().Err(err).Str("component", "quote_cache").Msg("cache write failed")
	}
}
