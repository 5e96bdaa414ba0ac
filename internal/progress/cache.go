package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	summaryKeyPrefix  = "aztracker::progress::summary::"
	DefaultSummaryTTL = 6 * time.Hour
)

func summaryKey(window Window) string {
	return fmt.Sprintf("%s%d", summaryKeyPrefix, int(window))
}

// RedisSummaryCache keeps computed summaries in redis until the next
// check-in is saved or deleted. Cache failures are logged, never returned.
type RedisSummaryCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisSummaryCache(redisClient *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (c *RedisSummaryCache) Get(ctx context.Context, window Window) (*Summary, bool) {
	key := summaryKey(window)
	val, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("get summary [%s] from redis: %s", key, err)
		}
		return nil, false
	}

	summary := &Summary{}
	if err := json.Unmarshal([]byte(val), summary); err != nil {
		log.Errorf("unmarshal cached summary [%s]: %s", key, err)
		return nil, false
	}

	log.Tracef("summary [%s] found in redis cache", key)
	return summary, true
}

func (c *RedisSummaryCache) Set(ctx context.Context, window Window, summary *Summary) {
	key := summaryKey(window)
	summaryBytes, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal summary [%s]: %s", key, err)
		return
	}

	if err := c.redisClient.Set(ctx, key, string(summaryBytes), c.ttl).Err(); err != nil {
		log.Errorf("cache summary [%s] in redis: %s", key, err)
	}
}

func (c *RedisSummaryCache) Invalidate(ctx context.Context) {
	keys := make([]string, 0, len(Windows))
	for _, w := range Windows {
		keys = append(keys, summaryKey(w))
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Errorf("invalidate cached summaries: %s", err)
	}
}

// NopSummaryCache never caches; used where no redis is available.
type NopSummaryCache struct{}

func (NopSummaryCache) Get(context.Context, Window) (*Summary, bool) { return nil, false }

func (NopSummaryCache) Set(context.Context, Window, *Summary) {}

func (NopSummaryCache) Invalidate(context.Context) {}
