package helper

import (
	"errors"
	"fmt"
)

// Must returns v, or panics with err if it is non-nil.
// Use when failure should be fatal for the caller.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var ErrPanicked = errors.New("panic recovered")

// ErrorFromPanic turns a recovered panic value into an error wrapping both
// ErrPanicked and, when r is itself an error, r.
func ErrorFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanicked, err)
	}
	return fmt.Errorf("%w: %v", ErrPanicked, r)
}

// Capture runs fn and converts a panic into an error.
func Capture[T any](fn func() (T, error)) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			res = zero
			err = ErrorFromPanic(r)
		}
	}()
	return fn()
}
