package memo

import (
	"github.com/google/uuid"
	"github.com/on-the-ground/memoize_go/store"
	"go.uber.org/zap"
)

// cache holds what both variants share: the store and the instance identity.
type cache[K comparable, V any] struct {
	id     string
	store  *store.Sharded[K, V]
	logger *zap.Logger
}

func newCache[K comparable, V any](cfg Config, kind string) cache[K, V] {
	id := uuid.New().String()
	logger := cfg.Logger.With(zap.String("cacheId", id), zap.String("kind", kind))
	logger.Debug("created memo cache", zap.Int("numShards", cfg.NumShards))
	return cache[K, V]{
		id:     id,
		store:  store.New[K, V](cfg.NumShards),
		logger: logger,
	}
}

// ID identifies the cache instance in logs.
func (c *cache[K, V]) ID() string {
	return c.id
}

// Len reports the number of cached keys.
func (c *cache[K, V]) Len() int {
	return c.store.Len()
}

// Entry returns the cached entry for key without computing anything.
func (c *cache[K, V]) Entry(key K) (store.Entry[K, V], bool) {
	return c.store.Entry(key)
}
