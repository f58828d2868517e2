package ostree

/*
Rotations restructure a node x with one of its children y, preserving the
in-order sequence of keys:

	     x                y
	    / \              / \
	   a   y    <=>     x   c
	      / \          / \
	     b   c        a   b

Only x and y change their children, therefore only they need their height
and size re-derived. Ancestors keep their counters, as the set of nodes below
them is unchanged.
*/

// rotateLeft lifts x.right into the position of x and returns it.
func (t *Tree[K]) rotateLeft(x *Node[K]) *Node[K] {
	y := x.right
	assert(y != nil, "rotateLeft requires a right child")
	T().Debugf("rotate left at %v", x.key)
	t.replace(x.parent, x, y)
	x.right = y.left
	if x.right != nil {
		x.right.parent = x
	}
	y.left = x
	x.parent = y
	x.update()
	y.update()
	return y
}

// rotateRight lifts x.left into the position of x and returns it.
func (t *Tree[K]) rotateRight(x *Node[K]) *Node[K] {
	y := x.left
	assert(y != nil, "rotateRight requires a left child")
	T().Debugf("rotate right at %v", x.key)
	t.replace(x.parent, x, y)
	x.left = y.right
	if x.left != nil {
		x.left.parent = x
	}
	y.right = x
	x.parent = y
	x.update()
	y.update()
	return y
}

// rebalance walks from n up to the root, re-deriving height and size of
// every node on the path and rotating where the AVL condition is violated.
//
// The walk never stops early: even if heights settle, the size counters of
// all ancestors have to be refreshed.
func (t *Tree[K]) rebalance(n *Node[K]) {
	for n != nil {
		n.update()
		switch b := n.Balance(); {
		case b >= 2: // right-heavy
			if n.right.right.Height() >= n.right.left.Height() {
				t.rotateLeft(n)
			} else {
				t.rotateRight(n.right)
				t.rotateLeft(n)
			}
			// n went down one level, its former parent is the pivot's parent
			n = n.parent.parent
		case b <= -2: // left-heavy
			if n.left.left.Height() >= n.left.right.Height() {
				t.rotateRight(n)
			} else {
				t.rotateLeft(n.left)
				t.rotateRight(n)
			}
			n = n.parent.parent
		default:
			n = n.parent
		}
	}
}
