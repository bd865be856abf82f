package store

import (
	"math/bits"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// DefaultNumShards is used when New is given a non-positive shard count.
const DefaultNumShards = 32

// Sharded is a grow-only concurrent map.
//
// Keys are spread over a power-of-two number of shards. A shard lock only
// guards the shard's slot table; the computation of a value runs under the
// slot's own mutex, so a slow producer never holds up other keys, even in
// the same shard. There is no removal: once a key holds a value, it keeps
// one for the lifetime of the store.
type Sharded[K comparable, V any] struct {
	shards []*shard[K, V]
	mask   uint64
}

type shard[K comparable, V any] struct {
	mu    sync.RWMutex
	slots map[K]*slot[V]
}

// slot is the per-key cell. A nil entry pointer means nothing has been
// stored yet, which includes a producer that is still running or that failed.
type slot[V any] struct {
	mu    sync.Mutex
	entry atomic.Pointer[cell[V]]
}

type cell[V any] struct {
	value    V
	computed timespan.TimeSpan
}

// New creates a store with numShards shards, rounded up to a power of two.
func New[K comparable, V any](numShards int) *Sharded[K, V] {
	if numShards <= 0 {
		numShards = DefaultNumShards
	}
	n := 1 << bits.Len(uint(numShards-1))
	shards := make([]*shard[K, V], n)
	for i := range shards {
		shards[i] = &shard[K, V]{slots: make(map[K]*slot[V])}
	}
	return &Sharded[K, V]{
		shards: shards,
		mask:   uint64(n - 1),
	}
}

// NumShards reports the effective shard count.
func (s *Sharded[K, V]) NumShards() int {
	return len(s.shards)
}

func (s *Sharded[K, V]) shardOf(key K) *shard[K, V] {
	return s.shards[getIndexByHash(key, s.mask)]
}

func (sh *shard[K, V]) lookup(key K) *slot[V] {
	sh.mu.RLock()
	sl := sh.slots[key]
	sh.mu.RUnlock()
	return sl
}

func (sh *shard[K, V]) lookupOrCreate(key K) *slot[V] {
	if sl := sh.lookup(key); sl != nil {
		return sl
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sl, ok := sh.slots[key]
	if !ok {
		sl = &slot[V]{}
		sh.slots[key] = sl
	}
	return sl
}

// Get returns the stored value for key. It never waits for a producer.
func (s *Sharded[K, V]) Get(key K) (V, bool) {
	if sl := s.shardOf(key).lookup(key); sl != nil {
		if c := sl.entry.Load(); c != nil {
			return c.value, true
		}
	}
	var zero V
	return zero, false
}

// GetOrInsertWith returns the value stored for key, or runs producer, stores
// its result and returns it. Concurrent calls for the same key run producer
// at most once between them: later callers wait for the first one.
//
// If producer panics the key stays empty and the panic propagates to this
// caller; the next caller for key runs its own producer.
func (s *Sharded[K, V]) GetOrInsertWith(key K, producer func() V) V {
	v, _ := s.GetOrTryInsertWith(key, func() (V, error) {
		return producer(), nil
	})
	return v
}

// GetOrTryInsertWith is GetOrInsertWith for a producer that can fail.
// A non-nil error is returned to this caller only and nothing is stored.
func (s *Sharded[K, V]) GetOrTryInsertWith(key K, producer func() (V, error)) (V, error) {
	sl := s.shardOf(key).lookupOrCreate(key)
	if c := sl.entry.Load(); c != nil {
		return c.value, nil
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()

	// another caller may have filled the slot while we waited
	if c := sl.entry.Load(); c != nil {
		return c.value, nil
	}

	start := time.Now()
	v, err := producer()
	if err != nil {
		var zero V
		return zero, err
	}
	sl.entry.Store(&cell[V]{
		value:    v,
		computed: timespan.BetweenTimes(start, time.Now()),
	})
	return v, nil
}

// Insert stores value for key, replacing any previous value. It does not
// wait for a producer running under GetOrInsertWith on the same key.
// The entry's computation span runs from since until now.
func (s *Sharded[K, V]) Insert(key K, value V, since time.Time) {
	sl := s.shardOf(key).lookupOrCreate(key)
	sl.entry.Store(&cell[V]{
		value:    value,
		computed: timespan.BetweenTimes(since, time.Now()),
	})
}

// Entry returns the stored entry for key.
func (s *Sharded[K, V]) Entry(key K) (Entry[K, V], bool) {
	if sl := s.shardOf(key).lookup(key); sl != nil {
		if c := sl.entry.Load(); c != nil {
			return Entry[K, V]{Key: key, Value: c.value, Computed: c.computed}, true
		}
	}
	return Entry[K, V]{}, false
}

// Len counts the keys that hold a value.
func (s *Sharded[K, V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, sl := range sh.slots {
			if sl.entry.Load() != nil {
				n++
			}
		}
		sh.mu.RUnlock()
	}
	return n
}

// Range calls fn for every stored entry until fn returns false.
// Entries are collected one shard at a time, so fn runs without any
// shard lock held and may call back into the store.
func (s *Sharded[K, V]) Range(fn func(Entry[K, V]) bool) {
	for _, sh := range s.shards {
		sh.mu.RLock()
		entries := make([]Entry[K, V], 0, len(sh.slots))
		for k, sl := range sh.slots {
			if c := sl.entry.Load(); c != nil {
				entries = append(entries, Entry[K, V]{Key: k, Value: c.value, Computed: c.computed})
			}
		}
		sh.mu.RUnlock()

		for _, e := range entries {
			if !fn(e) {
				return
			}
		}
	}
}
