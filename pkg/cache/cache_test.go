package cache

import (
	"context"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRedis implements the handful of commands the cache uses. Any other
// command panics on the nil embedded interface.
type memRedis struct {
	redis.Cmdable
	counters map[string]int64
	values   map[string]string
	ttls     map[string]time.Duration
	failNX   int
}

func newMemRedis() *memRedis {
	return &memRedis{
		counters: map[string]int64{},
		values:   map[string]string{},
		ttls:     map[string]time.Duration{},
	}
}

func (m *memRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	m.counters[key]++
	return redis.NewIntResult(m.counters[key], nil)
}

func (m *memRedis) SetNX(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd {
	if m.failNX > 0 {
		m.failNX--
		return redis.NewBoolResult(false, errors.New("connection reset"))
	}
	if _, ok := m.counters[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	m.counters[key] = 0
	m.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

// TTL follows redis: -2 for a missing key, -1 for a key without expiry.
func (m *memRedis) TTL(_ context.Context, key string) *redis.DurationCmd {
	if _, ok := m.counters[key]; !ok {
		return redis.NewDurationResult(-2, nil)
	}
	ttl, ok := m.ttls[key]
	if !ok {
		return redis.NewDurationResult(-1, nil)
	}
	return redis.NewDurationResult(ttl, nil)
}

// expire drops the key as if its window ran out.
func (m *memRedis) expire(key string) {
	delete(m.counters, key)
	delete(m.ttls, key)
}

func (m *memRedis) Expire(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	m.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (m *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	}
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func TestLimiterFixedWindow(t *testing.T) {
	ctx := context.Background()
	mem := newMemRedis()
	l := NewLimiter(mem)

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "comment:1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "comment:1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "comment:2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "keys are counted separately")
	assert.Equal(t, time.Minute, mem.ttls["ratelimit:comment:1"])
}

func TestLimiterNeverStrandsACounter(t *testing.T) {
	ctx := context.Background()
	const key = "ratelimit:tweet:7"

	t.Run("failed window open counts nothing", func(t *testing.T) {
		mem := newMemRedis()
		mem.failNX = 1
		l := NewLimiter(mem)

		_, err := l.Allow(ctx, "tweet:7", 2, time.Minute)
		require.Error(t, err)
		_, counted := mem.counters[key]
		assert.False(t, counted)

		for i := 0; i < 2; i++ {
			ok, err := l.Allow(ctx, "tweet:7", 2, time.Minute)
			require.NoError(t, err)
			assert.True(t, ok)
		}
		assert.Equal(t, time.Minute, mem.ttls[key])
	})

	t.Run("counter without ttl gets one back", func(t *testing.T) {
		mem := newMemRedis()
		mem.counters[key] = 6
		l := NewLimiter(mem)

		ok, err := l.Allow(ctx, "tweet:7", 2, time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, time.Minute, mem.ttls[key])

		mem.expire(key)
		ok, err = l.Allow(ctx, "tweet:7", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "a new window opens once the old one expires")
	})
}

func TestStatsCache(t *testing.T) {
	ctx := context.Background()
	mem := newMemRedis()
	c := NewStatsCache(mem, 30*time.Second)

	_, hit := c.Get(ctx, 42)
	assert.False(t, hit)

	want := &model.ChannelStats{TotalVideos: 2, TotalSubscribers: 5, TotalViews: 100, TotalLikes: 7}
	require.NoError(t, c.Set(ctx, 42, want))
	assert.Equal(t, 30*time.Second, mem.ttls["channel:stats:42"])

	got, hit := c.Get(ctx, 42)
	require.True(t, hit)
	assert.Equal(t, want, got)
}
