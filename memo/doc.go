// Package memo provides thread-safe memoization caches for pure functions.
//
// A cache wraps one computation, keyed by a single comparable value, and
// serves repeated keys from a concurrent sharded store (package store).
// Entries are never evicted: a cache grows with the number of distinct keys
// and lives as long as the value holding it.
//
// Two variants exist, and they deliberately give different guarantees:
//
//   - Blocking runs the computation on the calling goroutine, under a per-key
//     lock. Each key is computed exactly once, even when many goroutines ask
//     for it at the same time.
//   - Suspending runs a context-bound computation. Lookup and insert are
//     separate steps, so concurrent first callers may compute the same key
//     more than once (at-least-once, last write wins). Cancelling the context
//     stores nothing.
//
// In both variants a failed computation is never cached: the error (or panic)
// goes to that caller, and the next call for the key computes again.
//
// Func, Func2, FuncDual, FallibleFunc and SuspendingFunc wrap a function into
// a memoized function of the same shape, which is the usual way to use this
// package:
//
//	var fib func(int) int
//	fib = memo.Func(func(n int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
//
// WARNING: only memoize functions whose result depends on the key alone.
package memo
