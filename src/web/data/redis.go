package data

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tubetale/tubetale/src/analytics"
)

const channelPrefix = "channel:"

// OpenRedis connects to Redis from a URL. An empty URL disables caching and
// returns nil without error.
func OpenRedis(url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opt), nil
}

// ReportCache caches solo reports by lowercased channel name. Battle and
// truth results are never cached: battles depend on the full channel set and
// truth checks should always reflect current sources.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewReportCache accepts a nil client, in which case every lookup misses.
func NewReportCache(rdb *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ReportCache{rdb: rdb, ttl: ttl}
}

func soloKey(channelName string) string {
	return channelPrefix + strings.ToLower(strings.TrimSpace(channelName))
}

// GetSolo returns a cached report for the channel, if any.
func (c *ReportCache) GetSolo(ctx context.Context, channelName string) (*analytics.SoloReport, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, soloKey(channelName)).Bytes()
	if err != nil {
		return nil, false
	}
	var report analytics.SoloReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, false
	}
	return &report, true
}

// SetSolo stores a report under the channel key with the cache TTL.
func (c *ReportCache) SetSolo(ctx context.Context, channelName string, report *analytics.SoloReport) {
	if c == nil || c.rdb == nil || report == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, soloKey(channelName), raw, c.ttl).Err()
}
