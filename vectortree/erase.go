package vectortree

// Erase removes the element at index i using swap-with-last: the victim
// slot is overwritten with the last element and the tail shrinks by one.
// Order is not preserved. It returns ErrIndexOutOfBounds if i is out of
// range.
func (p *PSeq[T]) Erase(i uint64) (*PSeq[T], error) {
	before := p.Height()
	tree, err := p.tree.Erase(i)
	if err != nil {
		return nil, wrap("vectortree.Erase", err)
	}
	if tree.Height() != before {
		p.cfg.tracer().Debugf("vectortree: erase trimmed from height %d to %d at size %d", before, tree.Height(), tree.Len())
	}
	return p.derive(tree), nil
}
