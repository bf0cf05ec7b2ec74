package vtree

// Branch is the fan-out of every branch node and the capacity of every leaf
// buffer. It is a compile-time constant of the engine, not a per-tree
// parameter: any consumer wanting a different fan-out must vendor its own
// copy of the package with this constant changed.
const Branch = 32

// MaxHeight bounds the number of branch levels above the leaves, which in
// turn bounds a tree's capacity to Branch^MaxHeight.
const MaxHeight = 8

// MaxCapacity is the largest element count a tree of height MaxHeight can
// address.
var MaxCapacity = capacityAtHeight(MaxHeight)
