package ostree

import "fmt"

// GetNumSmallerOrEqualTo returns the number of keys less than or equal to key.
//
// The count is derived from subtree sizes along a single root-to-leaf path:
// whenever a node's key does not exceed the target, the node and its whole
// left subtree are counted and the descent continues to the right.
func (t *Tree[K]) GetNumSmallerOrEqualTo(key K) int {
	if t == nil {
		return 0
	}
	count := 0
	for n := t.root; n != nil; {
		if t.lessThan(key, n.key) {
			n = n.left
		} else {
			count += 1 + n.left.Size()
			n = n.right
		}
	}
	return count
}

// Rank is a synonym for GetNumSmallerOrEqualTo. For a key present in the tree
// without duplicates, this is its 1-based position in sorted order.
func (t *Tree[K]) Rank(key K) int {
	return t.GetNumSmallerOrEqualTo(key)
}

// CountLess returns the number of keys strictly less than key.
func (t *Tree[K]) CountLess(key K) int {
	if t == nil {
		return 0
	}
	count := 0
	for n := t.root; n != nil; {
		if t.lessThan(n.key, key) {
			count += 1 + n.left.Size()
			n = n.right
		} else {
			n = n.left
		}
	}
	return count
}

// CountRange returns the number of keys k with lo ≤ k ≤ hi.
func (t *Tree[K]) CountRange(lo, hi K) int {
	if t.IsEmpty() || t.lessThan(hi, lo) {
		return 0
	}
	return t.GetNumSmallerOrEqualTo(hi) - t.CountLess(lo)
}

// FindKth returns the node holding the k-th smallest key, with k starting
// at 1. A k outside of [1, Len()] results in an error wrapping
// ErrRankOutOfRange.
func (t *Tree[K]) FindKth(k int) (*Node[K], error) {
	size := t.Len()
	if k < 1 || k > size {
		return nil, fmt.Errorf("%w: k=%d, size=%d", ErrRankOutOfRange, k, size)
	}
	n := t.root
	for {
		nl := n.left.Size()
		switch {
		case nl == k-1:
			return n, nil
		case nl < k-1:
			k -= nl + 1
			n = n.right
		default:
			n = n.left
		}
		assert(n != nil, "FindKth: size counters out of sync")
	}
}

// At returns the k-th smallest key, with k starting at 1.
func (t *Tree[K]) At(k int) (K, error) {
	n, err := t.FindKth(k)
	if err != nil {
		var zero K
		return zero, err
	}
	return n.key, nil
}
