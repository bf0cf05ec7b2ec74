package vtree

// copyToLeaf duplicates every branch along the path from root to the leaf
// addressed by path, plus that leaf itself, leaving every other child
// handle pointing at the source node. It returns the new root and the
// freshly duplicated leaf, which the caller may mutate freely.
//
// Cost is O(height) node allocations. The descent and the rewiring are each
// an explicit loop bounded by height, not a recursive traversal: first walk
// down the original (unshared) spine cloning each branch in turn, then wire
// the clones together bottom-up.
func copyToLeaf[T any](root node[T], height int, path Path) (node[T], *leafNode[T]) {
	assert(len(path) == height, "copyToLeaf: path length must equal height")
	if height == 0 {
		leaf := cloneLeaf(asLeaf[T](root))
		return leaf, leaf
	}
	branches := make([]*branchNode[T], height)
	n := root
	for k := 0; k < height; k++ {
		b := asBranch[T](n)
		branches[k] = cloneBranch(b)
		n = b.store[path[k]]
	}
	leaf := cloneLeaf(asLeaf[T](n))
	var child node[T] = leaf
	for k := height - 1; k >= 0; k-- {
		branches[k].store[path[k]] = child
		child = branches[k]
	}
	return child, leaf
}

// copyToTwoLeaves duplicates the spine(s) to two target leaves, sharing the
// common prefix of branches when the two paths diverge below the root. If
// the two paths address the same leaf, the two returned leaves are the same
// node.
//
// Cost is O(height): branches on the shared prefix are cloned once, and
// branches below the divergence point are cloned once per target. The
// shared prefix is walked with an explicit loop bounded by height; the
// divergent halves are handed off to copyToLeaf, which is itself iterative.
func copyToTwoLeaves[T any](root node[T], height int, pathA, pathB Path) (node[T], *leafNode[T], *leafNode[T]) {
	assert(len(pathA) == height && len(pathB) == height, "copyToTwoLeaves: path length must equal height")
	if height == 0 {
		leaf := cloneLeaf(asLeaf[T](root))
		return leaf, leaf, leaf
	}

	shared := make([]*branchNode[T], 0, height)
	n := root
	level := 0
	for level < height && pathA[level] == pathB[level] {
		b := asBranch[T](n)
		shared = append(shared, cloneBranch(b))
		n = b.store[pathA[level]]
		level++
	}

	var top node[T]
	var leafA, leafB *leafNode[T]
	if level == height {
		leaf := cloneLeaf(asLeaf[T](n))
		leafA, leafB = leaf, leaf
		top = leaf
	} else {
		b := asBranch[T](n)
		diverged := cloneBranch(b)
		childA, la := copyToLeaf[T](b.store[pathA[level]], height-level-1, pathA[level+1:])
		childB, lb := copyToLeaf[T](b.store[pathB[level]], height-level-1, pathB[level+1:])
		diverged.store[pathA[level]] = childA
		diverged.store[pathB[level]] = childB
		leafA, leafB = la, lb
		top = diverged
	}

	child := top
	for k := len(shared) - 1; k >= 0; k-- {
		shared[k].store[pathA[k]] = child
		child = shared[k]
	}
	return child, leafA, leafB
}

// leafAt navigates to the leaf addressed by path without copying anything;
// used for read-only access.
func leafAt[T any](root node[T], height int, path Path) *leafNode[T] {
	n := root
	for k := 0; k < height; k++ {
		n = asBranch[T](n).store[path[k]]
	}
	return asLeaf[T](n)
}
