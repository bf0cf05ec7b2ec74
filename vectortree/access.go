package vectortree

// At returns the element at index i, or ErrIndexOutOfBounds if
// i >= p.Len().
func (p *PSeq[T]) At(i uint64) (T, error) {
	v, err := p.tree.At(i)
	if err != nil {
		return v, wrap("vectortree.At", err)
	}
	return v, nil
}

// Back returns the last element, or ErrEmptyContainer if p is empty.
func (p *PSeq[T]) Back() (T, error) {
	v, err := p.tree.Back()
	if err != nil {
		return v, wrap("vectortree.Back", err)
	}
	return v, nil
}
