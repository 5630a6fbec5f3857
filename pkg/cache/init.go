package cache

import (
	"context"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the configured redis. An empty address means no
// redis: the caller runs without rate limiting and stats caching.
func InitRedis(ctx context.Context) (*redis.Client, error) {
	cfg := config.ConfigInfo.Redis
	if cfg.Addr == "" {
		hlog.Warn("Redis not configured, rate limiting and stats cache disabled")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "ping redis %s", cfg.Addr)
	}
	hlog.Info("Connect Redis Success")
	return client, nil
}
