package vectortree

// SetAt returns a new PSeq differing from p only at index i, which must be
// in [0, Len()).
func (p *PSeq[T]) SetAt(i uint64, value T) (*PSeq[T], error) {
	tree, err := p.tree.SetAt(i, value)
	if err != nil {
		return nil, wrap("vectortree.SetAt", err)
	}
	return p.derive(tree), nil
}
