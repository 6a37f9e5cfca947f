// Package cache holds the redis-backed catalog cache. Invalidation is
// explicit: admin-facing writes call Invalidate, nothing expires behind
// the caller's back except the redis TTL itself.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

const (
	servicesKey   = "catalog:services"
	categoriesKey = "catalog:categories"
)

// CatalogSource is the subset of the repository the cache reads through to.
type CatalogSource interface {
	ListActiveServices(ctx context.Context) ([]models.Service, error)
	ListActiveCategories(ctx context.Context) ([]models.Category, error)
}

type envelope[T any] struct {
	Value     []T       `json:"value"`
	FetchedAt time.Time `json:"fetched_at"`
}

type CatalogCache struct {
	rdb    *redis.Client
	source CatalogSource
	ttl    time.Duration
	logger *zap.Logger
}

func NewCatalogCache(rdb *redis.Client, source CatalogSource, ttl time.Duration, logger *zap.Logger) *CatalogCache {
	return &CatalogCache{
		rdb:    rdb,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

// Services returns the active service list, from redis when fresh,
// otherwise from the source. A cache failure falls through to the source;
// the catalog read never fails because redis is down.
func (c *CatalogCache) Services(ctx context.Context) ([]models.Service, error) {
	if cached, ok := get[models.Service](ctx, c, servicesKey); ok {
		return cached, nil
	}

	services, err := c.source.ListActiveServices(ctx)
	if err != nil {
		return nil, err
	}

	c.put(ctx, servicesKey, envelope[models.Service]{Value: services, FetchedAt: time.Now()})
	return services, nil
}

func (c *CatalogCache) Categories(ctx context.Context) ([]models.Category, error) {
	if cached, ok := get[models.Category](ctx, c, categoriesKey); ok {
		return cached, nil
	}

	categories, err := c.source.ListActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	c.put(ctx, categoriesKey, envelope[models.Category]{Value: categories, FetchedAt: time.Now()})
	return categories, nil
}

// Invalidate drops both catalog keys. Called after any admin write to
// services or categories.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, servicesKey, categoriesKey).Err(); err != nil {
		c.logger.Warn("catalog cache invalidate failed", zap.Error(err))
	}
}

// Refresh repopulates both keys from the source immediately.
func (c *CatalogCache) Refresh(ctx context.Context) error {
	c.Invalidate(ctx)

	if _, err := c.Services(ctx); err != nil {
		return err
	}
	_, err := c.Categories(ctx)
	return err
}

func get[T any](ctx context.Context, c *CatalogCache, key string) ([]T, bool) {
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var env envelope[T]
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		c.logger.Warn("catalog cache payload corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return env.Value, true
}

func (c *CatalogCache) put(ctx context.Context, key string, env any) {
	b, err := json.Marshal(env)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
