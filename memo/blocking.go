package memo

import (
	"github.com/on-the-ground/memoize_go/shared/helper"
	"go.uber.org/zap"
)

// Blocking memoizes a computation that runs to completion on the calling
// goroutine.
//
// The computation runs at most once per key: concurrent callers of a key
// that is being computed wait for that computation and share its result.
// Callers of different keys never wait on each other.
//
// A failed computation (error or panic) is reported to its own caller only.
// Nothing is cached for the key, and the next caller computes again.
//
// A computation must not call back into the same cache with its own key:
// it would wait on itself forever.
type Blocking[K comparable, V any] struct {
	cache[K, V]
	compute func(K) (V, error)
}

// NewBlocking creates a Blocking cache for a total computation.
func NewBlocking[K comparable, V any](fn func(K) V, cfg ...Config) *Blocking[K, V] {
	return newBlocking(func(k K) (V, error) {
		return fn(k), nil
	}, normalizeConfig(cfg))
}

// NewFallibleBlocking creates a Blocking cache for a computation that can fail.
func NewFallibleBlocking[K comparable, V any](fn func(K) (V, error), cfg ...Config) *Blocking[K, V] {
	return newBlocking(fn, normalizeConfig(cfg))
}

func newBlocking[K comparable, V any](fn func(K) (V, error), cfg Config) *Blocking[K, V] {
	return &Blocking[K, V]{
		cache:   newCache[K, V](cfg, "blocking"),
		compute: fn,
	}
}

// Of returns the cached value for key, computing it first if needed.
// Panics with the computation's error if it fails; use TryOf for fallible
// computations.
func (b *Blocking[K, V]) Of(key K) V {
	return helper.Must(b.TryOf(key))
}

// TryOf returns the cached value for key, computing it first if needed.
// Errors are returned as-is and never cached.
func (b *Blocking[K, V]) TryOf(key K) (V, error) {
	if v, ok := b.store.Get(key); ok {
		return v, nil
	}
	return b.store.GetOrTryInsertWith(key, func() (V, error) {
		return b.run(key)
	})
}

func (b *Blocking[K, V]) run(key K) (V, error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("computation panicked", zap.Any("key", key), zap.Any("panic", r))
			panic(r) // re-raise to the caller of Of
		}
	}()

	b.logger.Debug("cache miss, computing", zap.Any("key", key))
	v, err := b.compute(key)
	if err != nil {
		b.logger.Debug("computation failed", zap.Any("key", key), zap.Error(err))
		return v, err
	}
	b.logger.Debug("stored computed value", zap.Any("key", key))
	return v, nil
}
