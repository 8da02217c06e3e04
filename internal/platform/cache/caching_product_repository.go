// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/pagination"
)

// CachingProductRepository decorates a ProductRepository with a Redis
// read-through cache for the public catalog reads. Product writes drop every
// key in the namespace; changes made through other aggregates (category or
// brand deletes and renames) are only picked up when the TTL expires.
type CachingProductRepository struct {
	inner     usecase.ProductRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository decorates inner. A nil rdb disables caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "products".
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, namespace string) *CachingProductRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "products"
	}
	return &CachingProductRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// List serves the full product list from cache when present.
func (c *CachingProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return cached(ctx, c, c.namespace+":list", func() ([]entity.Product, error) {
		return c.inner.List(ctx)
	})
}

// ListPage caches each page per page, size and filter.
func (c *CachingProductRepository) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Product], error) {
	key := fmt.Sprintf("%s:page:%d:%d:%s", c.namespace, p.Page, p.Size, safe(strings.ToLower(p.Filter)))
	return cached(ctx, c, key, func() (pagination.Page[entity.Product], error) {
		return c.inner.ListPage(ctx, p)
	})
}

// FindByID caches single products by id.
func (c *CachingProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	return cached(ctx, c, fmt.Sprintf("%s:id:%d", c.namespace, id), func() (*entity.Product, error) {
		return c.inner.FindByID(ctx, id)
	})
}

// Create writes through and drops every cached product entry.
func (c *CachingProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return c.invalidateAfter(ctx, c.inner.Create(ctx, p))
}

// Update writes through and invalidates the namespace.
func (c *CachingProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return c.invalidateAfter(ctx, c.inner.Update(ctx, p))
}

// Delete writes through and invalidates the namespace.
func (c *CachingProductRepository) Delete(ctx context.Context, id uint) error {
	return c.invalidateAfter(ctx, c.inner.Delete(ctx, id))
}

// invalidateAfter drops the namespace once a write succeeded.
func (c *CachingProductRepository) invalidateAfter(ctx context.Context, err error) error {
	if err != nil || c.rdb == nil {
		return err
	}
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		slog.Warn("product cache invalidation failed", "error", err, "namespace", c.namespace)
	}
	return nil
}

// cached returns the value stored under key, or loads and stores it.
// Redis failures fall through to load.
func cached[T any](ctx context.Context, c *CachingProductRepository, key string, load func() (T, error)) (T, error) {
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return out, err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingProductRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			return nil
		}
	}
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
