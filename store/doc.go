// Package store provides the concurrent keyed store behind the memo caches.
//
// Sharded is a hash map split into shards, each guarded by its own RWMutex,
// with a further mutex per key slot. It offers two write paths:
//
//   - GetOrInsertWith / GetOrTryInsertWith: atomic lookup-or-compute. The
//     producer runs while the key's slot is held, giving exactly-once
//     computation per key.
//   - Insert: a plain last-writer-wins write, for callers that compute
//     outside the store.
//
// The store only grows. There is no eviction, expiry or removal.
package store
