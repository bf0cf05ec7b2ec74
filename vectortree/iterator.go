package vectortree

import "github.com/BarisAlbayrakIEEE/vectortree/vtree"

// Iterator is a random-access, STL-style iterator over a PSeq snapshot.
// Iterators into p remain valid for p's lifetime; p's own derived
// operations never invalidate them because they never mutate p's tree.
type Iterator[T any] struct {
	it *vtree.Iterator[T]
}

// Begin returns an iterator positioned at the first element of p, or
// already at end if p is empty.
func Begin[T any](p *PSeq[T]) *Iterator[T] {
	return &Iterator[T]{it: vtree.Begin(p.tree)}
}

// End returns an iterator positioned one past the last element of p.
func End[T any](p *PSeq[T]) *Iterator[T] {
	return &Iterator[T]{it: vtree.End(p.tree)}
}

// AtEnd reports whether the iterator has run off the end.
func (it *Iterator[T]) AtEnd() bool {
	return it.it.AtEnd()
}

// Deref returns the element at the iterator's current position, or
// ErrIndexOutOfBounds at end.
func (it *Iterator[T]) Deref() (T, error) {
	v, err := it.it.Deref()
	if err != nil {
		return v, wrap("vectortree.Iterator.Deref", err)
	}
	return v, nil
}

// Next advances the iterator by one element.
func (it *Iterator[T]) Next() error {
	return wrap("vectortree.Iterator.Next", it.it.Next())
}

// Prev moves the iterator back by one element.
func (it *Iterator[T]) Prev() error {
	return wrap("vectortree.Iterator.Prev", it.it.Prev())
}

// Advance moves the iterator by delta elements, which may be negative.
func (it *Iterator[T]) Advance(delta int64) error {
	return wrap("vectortree.Iterator.Advance", it.it.Advance(delta))
}

// Index returns the iterator's linear element index.
func (it *Iterator[T]) Index() uint64 {
	return it.it.Index()
}

// SameContainer reports whether it and other walk the same PSeq value.
func (it *Iterator[T]) SameContainer(other *Iterator[T]) bool {
	return it.it.SameContainer(other.it)
}

// Compare orders two iterators over the same PSeq by linear index. It
// panics if the iterators do not share a container.
func (it *Iterator[T]) Compare(other *Iterator[T]) int {
	return it.it.Compare(other.it)
}
