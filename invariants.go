package ostree

import "fmt"

// Check validates the structural tree invariants:
//
//   - keys are in non-decreasing in-order sequence,
//   - subtree heights of every node differ by at most one,
//   - height and size counters agree with the children,
//   - every child links back to its parent, and the root has no parent.
//
// Violations are reported as errors wrapping ErrCorruptTree. A violation is
// always a bug in this package; Check is intended for tests and diagnostics.
// Nil and empty trees are valid.
func (t *Tree[K]) Check() error {
	if t == nil || t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrCorruptTree, t.root.key)
	}
	if _, _, err := t.checkNode(t.root); err != nil {
		return err
	}
	first := true
	var prev K
	for n := range t.Nodes() {
		if !first && t.lessThan(n.key, prev) {
			return fmt.Errorf("%w: key %v follows %v in order", ErrCorruptTree, n.key, prev)
		}
		prev, first = n.key, false
	}
	return nil
}

func (t *Tree[K]) checkNode(n *Node[K]) (size int, height int, err error) {
	if n == nil {
		return 0, -1, nil
	}
	for _, child := range [2]*Node[K]{n.left, n.right} {
		if child != nil && child.parent != n {
			return 0, 0, fmt.Errorf("%w: child %v of %v links to parent %v",
				ErrCorruptTree, child.key, n.key, child.parent)
		}
	}
	lsize, lheight, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rsize, rheight, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	size, height = 1+lsize+rsize, 1+max(lheight, rheight)
	if n.size != size {
		return 0, 0, fmt.Errorf("%w: node %v has size %d, expected %d", ErrCorruptTree, n.key, n.size, size)
	}
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: node %v has height %d, expected %d", ErrCorruptTree, n.key, n.height, height)
	}
	if d := rheight - lheight; d < -1 || d > 1 {
		return 0, 0, fmt.Errorf("%w: node %v is out of balance (%d)", ErrCorruptTree, n.key, d)
	}
	return size, height, nil
}
