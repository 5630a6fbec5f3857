package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"VidTube.com/cmd/model"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const statsKeyPrefix = "channel:stats:"

// StatsCache keeps dashboard stats for a short TTL.
type StatsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewStatsCache(client redis.Cmdable, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func statsKey(channelID int64) string {
	return statsKeyPrefix + strconv.FormatInt(channelID, 10)
}

// Get returns the cached stats, or false on a miss. Errors count as misses.
func (c *StatsCache) Get(ctx context.Context, channelID int64) (*model.ChannelStats, bool) {
	data, err := c.client.Get(ctx, statsKey(channelID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			hlog.CtxWarnf(ctx, "Get cached stats failed: %v", err)
		}
		return nil, false
	}
	var stats model.ChannelStats
	if err := json.Unmarshal(data, &stats); err != nil {
		hlog.CtxWarnf(ctx, "Decode cached stats failed: %v", err)
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, channelID int64, stats *model.ChannelStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return errors.Wrap(err, "marshal stats")
	}
	return c.client.Set(ctx, statsKey(channelID), data, c.ttl).Err()
}
