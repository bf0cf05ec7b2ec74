package vectortree

import (
	"errors"
	"fmt"

	"github.com/BarisAlbayrakIEEE/vectortree/vtree"
)

// PSeqError is an error type for the vectortree module, mirroring the
// engine's plain-sentinel convention one level up.
type PSeqError string

func (e PSeqError) Error() string {
	return string(e)
}

const (
	// ErrIndexOutOfBounds signals that a positional index is not within
	// [0, N) (or [0, N] for iterator arithmetic).
	ErrIndexOutOfBounds = PSeqError("index out of bounds")
	// ErrEmptyContainer signals an operation that requires a non-empty
	// sequence was applied to an empty one.
	ErrEmptyContainer = PSeqError("sequence is empty")
	// ErrCapacityExceeded signals that a sequence has reached its maximum
	// addressable size and cannot grow further.
	ErrCapacityExceeded = PSeqError("capacity exceeded")
	// ErrUnsupportedOperation marks API surface that is intentionally not
	// implemented, such as positional insert.
	ErrUnsupportedOperation = PSeqError("operation not supported")
)

// wrap translates an error surfaced by the vtree engine into the matching
// package-level sentinel, while keeping the original error reachable via
// errors.Is/errors.As -- callers may test against either layer.
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, vtree.ErrIndexOutOfBounds):
		return fmt.Errorf("%s: %w: %w", op, ErrIndexOutOfBounds, err)
	case errors.Is(err, vtree.ErrEmptyContainer):
		return fmt.Errorf("%s: %w: %w", op, ErrEmptyContainer, err)
	case errors.Is(err, vtree.ErrCapacityExceeded):
		return fmt.Errorf("%s: %w: %w", op, ErrCapacityExceeded, err)
	case errors.Is(err, vtree.ErrUnsupportedOperation):
		return fmt.Errorf("%s: %w: %w", op, ErrUnsupportedOperation, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
