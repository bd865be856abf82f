package store

import "github.com/rickb777/date/v2/timespan"

// Entry is a stored key/value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
	// Computed spans the computation that produced Value.
	Computed timespan.TimeSpan
}
