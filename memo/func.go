package memo

import "context"

// Pair packs two arguments into one comparable key.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// Func memoizes a one-argument function. The returned function is safe for
// concurrent use and computes each distinct argument exactly once.
//
// Assigning the result to a package-level variable gives a cache that lives
// for the rest of the process:
//
//	var square = memo.Func(func(x int) int { return x * x })
func Func[K comparable, V any](fn func(K) V, cfg ...Config) func(K) V {
	return NewBlocking(fn, cfg...).Of
}

// FallibleFunc memoizes a function that can fail. Errors are not cached.
func FallibleFunc[K comparable, V any](fn func(K) (V, error), cfg ...Config) func(K) (V, error) {
	return NewFallibleBlocking(fn, cfg...).TryOf
}

// Func2 memoizes a two-argument function by packing both arguments into a Pair.
func Func2[A, B comparable, V any](fn func(A, B) V, cfg ...Config) func(A, B) V {
	memoized := Func(func(p Pair[A, B]) V {
		return fn(p.First, p.Second)
	}, cfg...)
	return func(a A, b B) V {
		return memoized(Pair[A, B]{First: a, Second: b})
	}
}

type dual[V1, V2 any] struct {
	v1 V1
	v2 V2
}

// FuncDual memoizes a function with two results, stored together.
func FuncDual[K comparable, V1, V2 any](fn func(K) (V1, V2), cfg ...Config) func(K) (V1, V2) {
	memoized := Func(func(k K) dual[V1, V2] {
		v1, v2 := fn(k)
		return dual[V1, V2]{v1: v1, v2: v2}
	}, cfg...)
	return func(k K) (V1, V2) {
		res := memoized(k)
		return res.v1, res.v2
	}
}

// SuspendingFunc memoizes a context-bound function. See Suspending for the
// at-least-once guarantee it gives under concurrent first calls.
func SuspendingFunc[K comparable, V any](fn SuspendFunc[K, V], cfg ...Config) func(context.Context, K) (V, error) {
	return NewSuspending(fn, cfg...).Of
}
