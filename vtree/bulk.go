package vtree

// FromSlice builds a tree containing the given values in order. It returns
// an empty tree for an empty slice and ErrCapacityExceeded if the slice is
// larger than Branch^MaxHeight.
func FromSlice[T any](values []T) (*Tree[T], error) {
	n := uint64(len(values))
	if n == 0 {
		return Empty[T](), nil
	}
	if n > MaxCapacity {
		var zero *Tree[T]
		return zero, ErrCapacityExceeded
	}
	height := heightForSize(n)
	root := fillFromSlice[T](height, values)
	return &Tree[T]{
		height: height,
		root:   root,
		n:      n,
		active: leafPathForIndex(height, n-1),
	}, nil
}

// WithSize builds a tree of n default-initialized elements.
func WithSize[T any](n uint64) (*Tree[T], error) {
	if n == 0 {
		return Empty[T](), nil
	}
	values := make([]T, n)
	return FromSlice(values)
}
