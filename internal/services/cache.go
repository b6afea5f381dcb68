package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/banit/househunt-backend/internal/cache"
	"github.com/banit/househunt-backend/internal/types"
	"github.com/banit/househunt-backend/pkg/logger"
)

const rankedManagersKey = "listing:managers:ranked"

// RankingCache stores the viewer-independent ranked manager list.
// Callers apply the viewer's favorites after reading.
type RankingCache struct {
	kv  cache.KVStore
	ttl time.Duration
}

func NewRankingCache(kv cache.KVStore, ttl time.Duration) *RankingCache {
	if kv == nil {
		kv = cache.NoopKVStore{}
	}
	return &RankingCache{kv: kv, ttl: ttl}
}

// Get returns the cached ranking and whether it was found. Cache failures
// are logged and treated as misses.
func (c *RankingCache) Get(ctx context.Context) ([]types.ManagerSummary, bool) {
	raw, err := c.kv.Get(ctx, rankedManagersKey)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.WithFields(logger.Fields{"key": rankedManagersKey, "error": err}).Warn("ranking cache read failed")
		}
		return nil, false
	}

	var summaries []types.ManagerSummary
	if err := json.Unmarshal([]byte(raw), &summaries); err != nil {
		logger.WithFields(logger.Fields{"key": rankedManagersKey, "error": err}).Warn("ranking cache entry unreadable")
		return nil, false
	}
	return summaries, true
}

func (c *RankingCache) Set(ctx context.Context, summaries []types.ManagerSummary) {
	raw, err := json.Marshal(summaries)
	if err != nil {
		logger.WithFields(logger.Fields{"error": err}).Warn("ranking cache encode failed")
		return
	}
	if err := c.kv.Set(ctx, rankedManagersKey, string(raw), c.ttl); err != nil {
		logger.WithFields(logger.Fields{"key": rankedManagersKey, "error": err}).Warn("ranking cache write failed")
	}
}

// Invalidate drops the cached ranking, e.g. after a review changes.
func (c *RankingCache) Invalidate(ctx context.Context) {
	if err := c.kv.Del(ctx, rankedManagersKey); err != nil {
		logger.WithFields(logger.Fields{"key": rankedManagersKey, "error": err}).Warn("ranking cache invalidation failed")
	}
}
