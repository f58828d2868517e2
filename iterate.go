package ostree

import "iter"

// InOrder returns an iterator over all keys in ascending order.
//
// The iterator may be ranged over multiple times, each time starting from
// the smallest key. The tree must not be modified during iteration.
func (t *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range t.Nodes() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Nodes returns an iterator over all nodes in ascending key order.
func (t *Tree[K]) Nodes() iter.Seq[*Node[K]] {
	return func(yield func(*Node[K]) bool) {
		if t.IsEmpty() {
			return
		}
		for n := findMin(t.root); n != nil; n = successor(n) {
			if !yield(n) {
				return
			}
		}
	}
}

// Reverse returns an iterator over all keys in descending order.
func (t *Tree[K]) Reverse() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.IsEmpty() {
			return
		}
		for n := findMax(t.root); n != nil; n = predecessor(n) {
			if !yield(n.key) {
				return
			}
		}
	}
}

// ForEach walks keys in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) ForEach(fn func(key K) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K]) forEachNode(n *Node[K], fn func(key K) bool) bool {
	if n == nil {
		return true
	}
	if !t.forEachNode(n.left, fn) || !fn(n.key) {
		return false
	}
	return t.forEachNode(n.right, fn)
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
