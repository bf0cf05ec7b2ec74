package vectortree

// PushBack returns a new PSeq with value appended.
func (p *PSeq[T]) PushBack(value T) (*PSeq[T], error) {
	return p.EmplaceBack(func() T { return value })
}

// EmplaceBack is the construct-in-place counterpart of PushBack: build is
// invoked exactly once, writing its result directly into the destination
// leaf slot.
func (p *PSeq[T]) EmplaceBack(build func() T) (*PSeq[T], error) {
	before := p.Height()
	tree, err := p.tree.Emplace(build)
	if err != nil {
		return nil, wrap("vectortree.EmplaceBack", err)
	}
	if tree.Height() != before {
		p.cfg.tracer().Debugf("vectortree: grew from height %d to %d at size %d", before, tree.Height(), tree.Len())
	}
	return p.derive(tree), nil
}
