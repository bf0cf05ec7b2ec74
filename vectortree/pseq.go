package vectortree

import "github.com/BarisAlbayrakIEEE/vectortree/vtree"

// PSeq is a persistent, structurally shared sequence of T. Every operation
// that looks like a mutation returns a new PSeq; the receiver is always
// left exactly as it was.
type PSeq[T any] struct {
	tree *vtree.Tree[T]
	cfg  Config
}

// Empty returns an empty PSeq using the default configuration.
func Empty[T any]() *PSeq[T] {
	return &PSeq[T]{tree: vtree.Empty[T](), cfg: DefaultConfig()}
}

// EmptyWithConfig returns an empty PSeq using the given configuration.
func EmptyWithConfig[T any](cfg Config) *PSeq[T] {
	return &PSeq[T]{tree: vtree.Empty[T](), cfg: cfg}
}

// From builds a PSeq containing the given values in order.
func From[T any](values []T) (*PSeq[T], error) {
	return FromWithConfig(values, DefaultConfig())
}

// FromWithConfig is From with an explicit Config.
func FromWithConfig[T any](values []T, cfg Config) (*PSeq[T], error) {
	tree, err := vtree.FromSlice(values)
	if err != nil {
		return nil, wrap("vectortree.From", err)
	}
	cfg.tracer().Debugf("vectortree: built PSeq of size %d, height %d", tree.Len(), tree.Height())
	return &PSeq[T]{tree: tree, cfg: cfg}, nil
}

// WithSize builds a PSeq of n default-initialized elements.
func WithSize[T any](n uint64) (*PSeq[T], error) {
	return WithSizeWithConfig[T](n, DefaultConfig())
}

// WithSizeWithConfig is WithSize with an explicit Config.
func WithSizeWithConfig[T any](n uint64, cfg Config) (*PSeq[T], error) {
	tree, err := vtree.WithSize[T](n)
	if err != nil {
		return nil, wrap("vectortree.WithSize", err)
	}
	cfg.tracer().Debugf("vectortree: built PSeq of size %d, height %d", tree.Len(), tree.Height())
	return &PSeq[T]{tree: tree, cfg: cfg}, nil
}

// derive builds a new PSeq wrapping tree, carrying forward the receiver's
// configuration.
func (p *PSeq[T]) derive(tree *vtree.Tree[T]) *PSeq[T] {
	return &PSeq[T]{tree: tree, cfg: p.cfg}
}

// IsEmpty reports whether p holds no elements.
func (p *PSeq[T]) IsEmpty() bool {
	return p == nil || p.tree.IsEmpty()
}

// Len returns the number of elements in p.
func (p *PSeq[T]) Len() uint64 {
	if p == nil {
		return 0
	}
	return p.tree.Len()
}

// Height returns the tree height backing p: 0 for an empty PSeq.
func (p *PSeq[T]) Height() int {
	if p == nil {
		return 0
	}
	return p.tree.Height()
}

// Capacity returns the number of elements p could hold before its backing
// tree must grow another level.
func (p *PSeq[T]) Capacity() uint64 {
	if p == nil {
		return 0
	}
	return p.tree.Capacity()
}
