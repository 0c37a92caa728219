package sorting

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a non-empty [lo, hi] range that does not
	// lie inside [0, len(a)-1].
	ErrIndexOutOfRange = errors.New("sorting: index out of range")

	// ErrUnknownStrategy indicates a strategy label or kind outside
	// {merge, hybrid}.
	ErrUnknownStrategy = errors.New("sorting: unknown strategy")
)

// checkRange validates [lo, hi] against a. Ranges with lo >= hi hold at most
// one element and are accepted as no-ops.
func checkRange(method string, a []int, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	if lo < 0 || hi >= len(a) {
		return fmt.Errorf("%s: [%d,%d] with len %d: %w", method, lo, hi, len(a), ErrIndexOutOfRange)
	}

	return nil
}
