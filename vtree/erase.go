package vtree

// Erase removes the element at index i using swap-with-last: the victim
// slot is overwritten with the tree's last element and the tail shrinks by
// one. Order is not preserved. It returns ErrIndexOutOfBounds if i is out
// of range.
func (t *Tree[T]) Erase(i uint64) (*Tree[T], error) {
	if t.IsEmpty() || i >= t.n {
		var zero *Tree[T]
		return zero, ErrIndexOutOfBounds
	}
	if i == t.n-1 {
		return t.Pop()
	}

	lastValue, err := t.At(t.n - 1)
	assert(err == nil, "Erase: failed to read last element of a non-empty tree")
	newSize := t.n - 1

	if t.height > 1 && newSize == capacityAtHeight(t.height-1) {
		// Popping alone would trim a level; trim first, then write the
		// victim slot within the trimmed tree.
		trimmedRoot := asBranch[T](t.root).store[0]
		victimPath := leafPathForIndex(t.height-1, i)
		newRoot, leaf := copyToLeaf[T](trimmedRoot, t.height-1, victimPath)
		slot := elementPathForIndex(t.height-1, i)[t.height-1]
		leaf.store[slot] = lastValue
		return &Tree[T]{
			height: t.height - 1,
			root:   newRoot,
			n:      newSize,
			active: lastLeafPath(t.height - 1),
		}, nil
	}

	victimLeafPath := leafPathForIndex(t.height, i)
	victimSlot := elementPathForIndex(t.height, i)[t.height]

	newRoot, victimLeaf, activeLeaf := copyToTwoLeaves[T](t.root, t.height, victimLeafPath, t.active)
	victimLeaf.store[victimSlot] = lastValue
	activeLeaf.n--
	active := t.active
	if activeLeaf.n == 0 {
		prev, ok := prevLeafPath(t.active)
		assert(ok, "Erase: active leaf emptied but no previous leaf exists")
		active = prev
	}
	return &Tree[T]{height: t.height, root: newRoot, n: newSize, active: active}, nil
}
