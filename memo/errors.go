package memo

import (
	"errors"

	"github.com/on-the-ground/memoize_go/shared/helper"
)

// ErrComputationPanicked wraps a panic raised by a suspending computation.
// The panic value is kept in the message, and in the chain when it is an error.
var ErrComputationPanicked = helper.ErrPanicked

func isPanicErr(err error) bool {
	return errors.Is(err, ErrComputationPanicked)
}
