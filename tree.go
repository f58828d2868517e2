package ostree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
)

// Tree is an AVL tree with subtree-size counters.
//
// A Tree must be created with New or NewOrdered. Trees are single-threaded
// values; see the package documentation.
type Tree[K any] struct {
	root *Node[K]
	less func(a, b K) bool
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{less: cfg.Less}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{less: cmp.Less[K]}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.Size()
}

// Height returns the height of the tree, where -1 means empty and 0 means a
// single root node.
func (t *Tree[K]) Height() int {
	if t == nil {
		return -1
	}
	return t.root.Height()
}

// Clear drops all keys.
func (t *Tree[K]) Clear() {
	if t != nil {
		t.root = nil
	}
}

// Min returns the smallest key. ok is false for an empty tree.
func (t *Tree[K]) Min() (key K, ok bool) {
	if t.IsEmpty() {
		return key, false
	}
	return findMin(t.root).key, true
}

// Max returns the largest key. ok is false for an empty tree.
func (t *Tree[K]) Max() (key K, ok bool) {
	if t.IsEmpty() {
		return key, false
	}
	return findMax(t.root).key, true
}

// Successor returns the in-order successor of n, or nil if n holds the
// largest key.
func (t *Tree[K]) Successor(n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	return successor(n)
}

// Predecessor returns the in-order predecessor of n, or nil if n holds the
// smallest key.
func (t *Tree[K]) Predecessor(n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	return predecessor(n)
}

// --- Helpers ---------------------------------------------------------------

func (t *Tree[K]) lessThan(a, b K) bool {
	assert(t.less != nil, "tree not initialized, use New or NewOrdered")
	return t.less(a, b)
}

// replace puts n into the child slot of parent currently occupied by old.
// A nil parent denotes the root slot. n may be nil.
func (t *Tree[K]) replace(parent, old, n *Node[K]) {
	switch {
	case parent == nil:
		t.root = n
	case parent.left == old:
		parent.left = n
	default:
		assert(parent.right == old, "replace: old is not a child of parent")
		parent.right = n
	}
	if n != nil {
		n.parent = parent
	}
}

// owns checks if n is linked into t.
func (t *Tree[K]) owns(n *Node[K]) bool {
	for n != nil && n.parent != nil {
		n = n.parent
	}
	return n != nil && n == t.root
}
