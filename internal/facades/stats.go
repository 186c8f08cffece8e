package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/models"
)

// ActivityStatsReader provides the aggregate queries over a user's
// activities.
type ActivityStatsReader interface {
	GetStatsByUserID(ctx context.Context, userID int64) (*models.ActivityStatsDB, error)
	GetTotalByUserID(ctx context.Context, userID int64) (int, error)
}

// Cacher is the minimal cache surface the facade needs. Get returns
// found=false on a miss.
type Cacher interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// RedisCache implements Cacher on top of a redis client.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

// StatsCacheFacade serves per-user aggregates through a cache in front
// of the database reader. Cache failures are logged and treated as
// misses so the database stays the source of truth.
type StatsCacheFacade struct {
	reader ActivityStatsReader
	cache  Cacher
	ttl    time.Duration
}

func NewStatsCacheFacade(reader ActivityStatsReader, cache Cacher, ttl time.Duration) *StatsCacheFacade {
	return &StatsCacheFacade{reader: reader, cache: cache, ttl: ttl}
}

func statsKey(userID int64) string {
	return fmt.Sprintf("stats:%d", userID)
}

func totalKey(userID int64) string {
	return fmt.Sprintf("total:%d", userID)
}

// GetStatsByUserID returns the cached aggregate row for the user,
// falling back to the reader on a miss.
func (f *StatsCacheFacade) GetStatsByUserID(ctx context.Context, userID int64) (*models.ActivityStatsDB, error) {
	key := statsKey(userID)

	if cached, found, err := f.cache.Get(ctx, key); err != nil {
		logger.Log.Errorw("stats cache read failed", "key", key, "error", err)
	} else if found {
		var stats models.ActivityStatsDB
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		logger.Log.Errorw("stats cache entry corrupt", "key", key)
	}

	stats, err := f.reader.GetStatsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := f.cache.Set(ctx, key, string(payload), f.ttl); err != nil {
			logger.Log.Errorw("stats cache write failed", "key", key, "error", err)
		}
	}

	return stats, nil
}

// GetTotalByUserID returns the cached points total for the user,
// falling back to the reader on a miss.
func (f *StatsCacheFacade) GetTotalByUserID(ctx context.Context, userID int64) (int, error) {
	key := totalKey(userID)

	if cached, found, err := f.cache.Get(ctx, key); err != nil {
		logger.Log.Errorw("total cache read failed", "key", key, "error", err)
	} else if found {
		if total, err := strconv.Atoi(cached); err == nil {
			return total, nil
		}
		logger.Log.Errorw("total cache entry corrupt", "key", key)
	}

	total, err := f.reader.GetTotalByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := f.cache.Set(ctx, key, strconv.Itoa(total), f.ttl); err != nil {
		logger.Log.Errorw("total cache write failed", "key", key, "error", err)
	}

	return total, nil
}

// Invalidate drops the cached aggregates for the user. Called after
// every activity mutation.
func (f *StatsCacheFacade) Invalidate(ctx context.Context, userID int64) error {
	return f.cache.Del(ctx, statsKey(userID), totalKey(userID))
}
