package memo

import (
	"context"
	"time"

	"github.com/on-the-ground/memoize_go/shared/helper"
	"go.uber.org/zap"
)

// SuspendFunc is a computation that may wait on ctx while it runs.
type SuspendFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Result carries the outcome of an asynchronous lookup.
type Result[V any] struct {
	Value V
	Err   error
}

// Suspending memoizes a context-bound computation.
//
// Unlike Blocking, the lookup and the insert are two separate store
// operations with the computation in between. Two first-time callers racing
// on the same key may both miss and both compute; whichever finishes last
// overwrites the other. The guarantee is at-least-once per key, not
// exactly-once, so the computation should be pure.
//
// If ctx is done before the computation completes, Of returns ctx.Err() and
// nothing is stored: a later call computes again.
type Suspending[K comparable, V any] struct {
	cache[K, V]
	compute SuspendFunc[K, V]
}

// NewSuspending creates a Suspending cache around fn.
func NewSuspending[K comparable, V any](fn SuspendFunc[K, V], cfg ...Config) *Suspending[K, V] {
	return &Suspending[K, V]{
		cache:   newCache[K, V](normalizeConfig(cfg), "suspending"),
		compute: fn,
	}
}

// Of returns the cached value for key, or runs the computation, waits for it
// (or for ctx), stores its result and returns it. A hit returns immediately
// without starting a goroutine.
//
// Computation errors are returned as-is and not cached. A panic in the
// computation is returned as an error wrapping ErrComputationPanicked.
func (s *Suspending[K, V]) Of(ctx context.Context, key K) (V, error) {
	if v, ok := s.store.Get(key); ok {
		return v, nil
	}

	var zero V
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.logger.Debug("cache miss, computing", zap.Any("key", key))
	start := time.Now()
	done := make(chan Result[V], 1)
	ready := make(chan struct{})
	go func() {
		close(ready)
		v, err := helper.Capture(func() (V, error) {
			return s.compute(ctx, key)
		})
		done <- Result[V]{Value: v, Err: err}
	}()
	<-ready

	select {
	case res := <-done:
		if res.Err != nil {
			s.logResultErr(key, res.Err)
			return zero, res.Err
		}
		s.store.Insert(key, res.Value, start)
		s.logger.Debug("stored computed value", zap.Any("key", key))
		return res.Value, nil
	case <-ctx.Done():
		s.logger.Warn("context done before computation completed, nothing stored",
			zap.Any("key", key), zap.Error(ctx.Err()))
		return zero, ctx.Err()
	}
}

// Go is the asynchronous form of Of. The returned channel yields exactly one
// Result and is then closed.
func (s *Suspending[K, V]) Go(ctx context.Context, key K) <-chan Result[V] {
	// buffered so the sender never waits on a receiver that went away
	resCh := make(chan Result[V], 1)

	if v, ok := s.store.Get(key); ok {
		resCh <- Result[V]{Value: v}
		close(resCh)
		return resCh
	}

	go func() {
		defer close(resCh)
		v, err := s.Of(ctx, key)
		resCh <- Result[V]{Value: v, Err: err}
	}()
	return resCh
}

func (s *Suspending[K, V]) logResultErr(key K, err error) {
	if isPanicErr(err) {
		s.logger.Error("computation panicked", zap.Any("key", key), zap.Error(err))
		return
	}
	s.logger.Debug("computation failed", zap.Any("key", key), zap.Error(err))
}
