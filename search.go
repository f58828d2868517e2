package ostree

// Find returns a node holding key, or nil if key is not in the tree.
//
// With duplicate keys present, Find returns the first matching node on the
// path from the root.
func (t *Tree[K]) Find(key K) *Node[K] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		switch {
		case t.lessThan(key, n.key):
			n = n.left
		case t.lessThan(n.key, key):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.Find(key) != nil
}
