package ostree

import "fmt"

// Node is a node of an order-statistics tree, holding a single key.
//
// Nodes are owned by their tree and may be inspected, but not modified, by
// clients. Rotations move nodes around, and deleting a node with two children
// moves its in-order successor's key into it, so a node handle stays valid
// only until the next mutating operation on the tree.
type Node[K any] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	parent *Node[K] // back-reference for upward walks only
	height int      // a leaf has height 0
	size   int      // number of nodes in this subtree, including n
}

func newNode[K any](key K, parent *Node[K]) *Node[K] {
	return &Node[K]{key: key, parent: parent, size: 1}
}

// Key returns the key stored in n.
func (n *Node[K]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

// Left returns the left child of n, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the structural parent of n, or nil for the root.
func (n *Node[K]) Parent() *Node[K] {
	if n == nil {
		return nil
	}
	return n.parent
}

// Height returns the height of the subtree rooted at n.
// A leaf has height 0, an absent node has height -1.
func (n *Node[K]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[K]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// IsLeaf is true if n has no children.
func (n *Node[K]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// Balance returns height(right) - height(left). For a balanced tree this is
// always one of -1, 0, +1.
func (n *Node[K]) Balance() int {
	if n == nil {
		return 0
	}
	return n.right.Height() - n.left.Height()
}

func (n *Node[K]) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v[h=%d,n=%d]", n.key, n.height, n.size)
}

// update re-derives height and size of n from its children.
func (n *Node[K]) update() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
	n.size = 1 + n.left.Size() + n.right.Size()
}

// findMin descends all-left from a non-empty subtree.
func findMin[K any](n *Node[K]) *Node[K] {
	assert(n != nil, "findMin called for empty subtree")
	for n.left != nil {
		n = n.left
	}
	return n
}

// findMax descends all-right from a non-empty subtree.
func findMax[K any](n *Node[K]) *Node[K] {
	assert(n != nil, "findMax called for empty subtree")
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the in-order successor of n, or nil if n holds the
// maximum key.
func successor[K any](n *Node[K]) *Node[K] {
	if n.right != nil {
		return findMin(n.right)
	}
	// climb until we arrive from a left child
	cur, parent := n, n.parent
	for parent != nil && parent.left != cur {
		cur, parent = parent, parent.parent
	}
	return parent
}

// predecessor is the mirror of successor.
func predecessor[K any](n *Node[K]) *Node[K] {
	if n.left != nil {
		return findMax(n.left)
	}
	cur, parent := n, n.parent
	for parent != nil && parent.right != cur {
		cur, parent = parent, parent.parent
	}
	return parent
}
