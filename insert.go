package ostree

// Insert adds key to the tree and returns the node holding it.
// Duplicates are allowed: a key equal to an existing one is placed to the
// right of it.
func (t *Tree[K]) Insert(key K) *Node[K] {
	assert(t != nil, "Insert called for nil tree")
	if t.root == nil {
		t.root = newNode(key, nil)
		T().Debugf("insert %v as root", key)
		return t.root
	}
	n := t.root
	for {
		n.size++ // the new node will end up below n
		if t.lessThan(key, n.key) {
			if n.left == nil {
				node := newNode(key, n)
				n.left = node
				t.rebalance(n)
				return node
			}
			n = n.left
		} else {
			if n.right == nil {
				node := newNode(key, n)
				n.right = node
				t.rebalance(n)
				return node
			}
			n = n.right
		}
	}
}

// InsertAll inserts a sequence of keys.
func (t *Tree[K]) InsertAll(keys ...K) {
	for _, k := range keys {
		t.Insert(k)
	}
}
