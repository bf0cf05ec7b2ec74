package vectortree

// PopBack returns a new PSeq with the last element removed, or
// ErrEmptyContainer if p is already empty.
func (p *PSeq[T]) PopBack() (*PSeq[T], error) {
	before := p.Height()
	tree, err := p.tree.Pop()
	if err != nil {
		return nil, wrap("vectortree.PopBack", err)
	}
	if tree.Height() != before {
		p.cfg.tracer().Debugf("vectortree: trimmed from height %d to %d at size %d", before, tree.Height(), tree.Len())
	}
	return p.derive(tree), nil
}
