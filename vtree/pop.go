package vtree

// Pop returns a new tree with the last element removed, or ErrEmptyContainer
// if the tree is already empty.
func (t *Tree[T]) Pop() (*Tree[T], error) {
	if t.IsEmpty() {
		var zero *Tree[T]
		return zero, ErrEmptyContainer
	}
	if t.n == 1 {
		return Empty[T](), nil
	}
	newSize := t.n - 1
	if t.height > 1 && newSize == capacityAtHeight(t.height-1) {
		newRoot := asBranch[T](t.root).store[0]
		return &Tree[T]{
			height: t.height - 1,
			root:   newRoot,
			n:      newSize,
			active: lastLeafPath(t.height - 1),
		}, nil
	}
	newRoot, leaf := copyToLeaf[T](t.root, t.height, t.active)
	leaf.n--
	active := t.active
	if leaf.n == 0 {
		prev, ok := prevLeafPath(t.active)
		assert(ok, "Pop: active leaf emptied but no previous leaf exists")
		active = prev
	}
	return &Tree[T]{height: t.height, root: newRoot, n: newSize, active: active}, nil
}
