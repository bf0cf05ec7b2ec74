package vectortree

// ForEach returns a new PSeq obtained by deep-cloning p and applying f to
// every element of the clone, in order. p itself is left untouched.
func (p *PSeq[T]) ForEach(f func(*T)) *PSeq[T] {
	tree := p.tree.ForEach(f)
	p.cfg.tracer().Debugf("vectortree: for-each over %d elements", tree.Len())
	return p.derive(tree)
}
