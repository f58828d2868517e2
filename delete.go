package ostree

import "fmt"

// Delete removes one node holding key. Deleting a key which is not in the
// tree is a no-op. Delete reports whether a node has been removed.
func (t *Tree[K]) Delete(key K) bool {
	if t == nil {
		return false
	}
	n := t.Find(key)
	if n == nil {
		T().Debugf("delete: key %v not found", key)
		return false
	}
	t.deleteNode(n)
	return true
}

// Remove removes one node holding key, returning an error wrapping
// ErrKeyNotFound if there is none.
func (t *Tree[K]) Remove(key K) error {
	if !t.Delete(key) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return nil
}

// DeleteNode removes the key held by n, where n has been obtained from t
// by an earlier call to Find, Insert or FindKth without mutations in between.
func (t *Tree[K]) DeleteNode(n *Node[K]) error {
	if t == nil || n == nil || !t.owns(n) {
		return ErrNodeNotInTree
	}
	t.deleteNode(n)
	return nil
}

func (t *Tree[K]) deleteNode(n *Node[K]) {
	if n.left != nil && n.right != nil {
		// The successor is the minimum of n's right subtree and therefore has
		// no left child. Move its key up and remove the successor instead.
		s := successor(n)
		T().Debugf("delete %v: swap with successor %v", n.key, s.key)
		n.key, s.key = s.key, n.key
		n = s
	}
	t.unlink(n)
}

// unlink removes a node with at most one child from the tree.
func (t *Tree[K]) unlink(n *Node[K]) {
	assert(n.left == nil || n.right == nil, "unlink requires a node with at most one child")
	parent := n.parent
	child := n.left
	if child == nil {
		child = n.right
	}
	t.replace(parent, n, child)
	n.left, n.right, n.parent = nil, nil, nil
	if child != nil {
		T().Debugf("delete %v: splice in child %v", n.key, child.key)
		t.rebalance(child)
		return
	}
	T().Debugf("delete %v: detach leaf", n.key)
	t.rebalance(parent)
}
