package vtree

import "errors"

var (
	// ErrIndexOutOfBounds signals that a positional index is not within
	// [0, N) (or [0, N] for iterator arithmetic).
	ErrIndexOutOfBounds = errors.New("vtree: index out of bounds")
	// ErrEmptyContainer signals an operation that requires a non-empty tree
	// was applied to an empty one.
	ErrEmptyContainer = errors.New("vtree: container is empty")
	// ErrCapacityExceeded signals that a tree has reached Branch^MaxHeight
	// and cannot grow further.
	ErrCapacityExceeded = errors.New("vtree: capacity exceeded")
	// ErrUnsupportedOperation marks API surface that is intentionally not
	// implemented, such as positional insert.
	ErrUnsupportedOperation = errors.New("vtree: operation not supported")
)
