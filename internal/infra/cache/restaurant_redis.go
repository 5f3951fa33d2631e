package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/idanaslund/final-project-backend/internal/domain/restaurant"
	"github.com/idanaslund/final-project-backend/internal/models"
	"github.com/idanaslund/final-project-backend/internal/observability"
)

const (
	cacheName = "restaurants"
	keyPrefix = "restaurants:"
)

// RestaurantCache is a read-through cache in front of a restaurant.Repository.
// Redis failures are logged and the call falls through to the store.
type RestaurantCache struct {
	next restaurant.Repository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewRestaurantCache(next restaurant.Repository, rdb *redis.Client, ttl time.Duration) *RestaurantCache {
	return &RestaurantCache{next: next, rdb: rdb, ttl: ttl}
}

func (c *RestaurantCache) List(ctx context.Context) ([]models.Restaurant, error) {
	key := keyPrefix + "all"

	var cached []models.Restaurant
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	list, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, list)
	return list, nil
}

func (c *RestaurantCache) GetByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	key := keyPrefix + "id:" + strconv.FormatUint(uint64(id), 10)
	return c.one(ctx, key, func() (*models.Restaurant, error) {
		return c.next.GetByID(ctx, id)
	})
}

func (c *RestaurantCache) GetByName(ctx context.Context, name string) (*models.Restaurant, error) {
	key := keyPrefix + "name:" + name
	return c.one(ctx, key, func() (*models.Restaurant, error) {
		return c.next.GetByName(ctx, name)
	})
}

// Flush drops every cached restaurant key; cmd/seed calls it after reloading the dataset.
func Flush(ctx context.Context, rdb *redis.Client) error {
	iter := rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	observability.ObserveCache(cacheName, "del")
	return rdb.Del(ctx, keys...).Err()
}

// one never caches a miss, so a restaurant added by a reseed shows up immediately.
func (c *RestaurantCache) one(
	ctx context.Context,
	key string,
	load func() (*models.Restaurant, error),
) (*models.Restaurant, error) {

	var cached models.Restaurant
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	r, err := load()
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, r)
	return r, nil
}

func (c *RestaurantCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.ObserveCache(cacheName, "miss")
		return false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt")
		return false
	}
	observability.ObserveCache(cacheName, "hit")
	return true
}

func (c *RestaurantCache) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		return
	}
	observability.ObserveCache(cacheName, "set")
}

// Compile-time check
var _ restaurant.Repository = (*RestaurantCache)(nil)
