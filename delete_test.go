package ostree

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

// rightChain builds a degenerated tree where every key is the right child of
// its predecessor. Counters are correct, balance is not.
func rightChain(keys ...int) *Tree[int] {
	tree := NewOrdered[int]()
	nodes := make([]*Node[int], len(keys))
	var parent *Node[int]
	for i, k := range keys {
		n := newNode(k, parent)
		if parent == nil {
			tree.root = n
		} else {
			parent.right = n
		}
		nodes[i], parent = n, n
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		nodes[i].update()
	}
	return tree
}

func TestDeleteRootOfRightChain(t *testing.T) {
	teardown := quickTrace(t)
	defer teardown()
	//
	tree := rightChain(0, 1, 2, 3)
	if !tree.Delete(0) {
		t.Fatalf("expected root key 0 to be deleted")
	}
	root := tree.Root()
	if root.Key() != 2 || root.Left().Key() != 1 || root.Right().Key() != 3 {
		t.Errorf("expected 2(1,3), have %v(%v,%v)", root, root.Left(), root.Right())
	}
	if root.Parent() != nil {
		t.Errorf("expected new root to have no parent")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDeleteOneChildRootUpdatesRoot(t *testing.T) {
	tree := NewOrdered[int]()
	tree.InsertAll(1, 2)
	tree.Delete(1)
	if tree.Root() == nil || tree.Root().Key() != 2 || tree.Len() != 1 {
		t.Fatalf("expected 2 to become the root, have %v", tree.Root())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDeleteTwoChildrenSwapsKeys(t *testing.T) {
	teardown := quickTrace(t)
	defer teardown()
	//
	tree := perfectTree()
	root := tree.Root()
	tree.Delete(4)
	if tree.Root() != root || root.Key() != 5 {
		t.Errorf("expected successor key 5 to move into root node, root is %v", tree.Root())
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(tree.Keys(), []int{1, 2, 3, 5, 6, 7}) {
		t.Errorf("unexpected keys %v", tree.Keys())
	}
}

func TestDeleteLeafRebalances(t *testing.T) {
	tree := NewOrdered[int]()
	tree.InsertAll(2, 1, 3, 4)
	tree.Delete(1)
	root := tree.Root()
	if root.Key() != 3 || root.Left().Key() != 2 || root.Right().Key() != 4 {
		t.Errorf("expected 3(2,4), have %v(%v,%v)", root, root.Left(), root.Right())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDeleteSequence(t *testing.T) {
	teardown := quickTrace(t)
	defer teardown()
	//
	tree := NewOrdered[int]()
	tree.InsertAll(60, 20, 55, 10, 5, 18, 50, 4, 45)
	for _, k := range []int{60, 4, 10} {
		if !tree.Delete(k) {
			t.Fatalf("expected %d to be deleted", k)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after deleting %d: %v", k, err)
		}
	}
	if !slices.Equal(tree.Keys(), []int{5, 18, 20, 45, 50, 55}) {
		t.Errorf("unexpected keys %v", tree.Keys())
	}
}

func TestDeleteAbsentKey(t *testing.T) {
	tree := NewOrdered[int]()
	if tree.Delete(1) {
		t.Errorf("expected delete on empty tree to report false")
	}
	tree.InsertAll(1, 2, 3)
	if tree.Delete(7) {
		t.Errorf("expected delete of absent key to report false")
	}
	if err := tree.Remove(7); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if tree.Len() != 3 {
		t.Errorf("expected tree to be unchanged, len=%d", tree.Len())
	}
}

func TestDeleteNode(t *testing.T) {
	tree := NewOrdered[int]()
	tree.InsertAll(1, 2, 3)
	other := NewOrdered[int]()
	foreign := other.Insert(2)
	if err := tree.DeleteNode(foreign); !errors.Is(err, ErrNodeNotInTree) {
		t.Errorf("expected ErrNodeNotInTree, got %v", err)
	}
	n, err := tree.FindKth(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := tree.DeleteNode(n); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(tree.Keys(), []int{2, 3}) {
		t.Errorf("unexpected keys %v", tree.Keys())
	}
	if err := tree.DeleteNode(n); !errors.Is(err, ErrNodeNotInTree) {
		t.Errorf("expected unlinked node to be rejected, got %v", err)
	}
}

func TestDeleteDuplicates(t *testing.T) {
	tree := NewOrdered[int]()
	tree.InsertAll(5, 5, 3, 5, 5, 7)
	for i := 0; i < 3; i++ {
		if !tree.Delete(5) {
			t.Fatalf("expected duplicate #%d to be deleted", i+1)
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if !slices.Equal(tree.Keys(), []int{3, 5, 7}) {
		t.Errorf("unexpected keys %v", tree.Keys())
	}
}

func TestRoundTripToEmptyTree(t *testing.T) {
	r := rand.New(rand.NewPCG(425, 1024))
	tree := NewOrdered[int]()
	keys := make([]int, 500)
	for i := range keys {
		keys[i] = r.IntN(100)
		tree.Insert(keys[i])
	}
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, k := range keys {
		if !tree.Delete(k) {
			t.Fatalf("expected key %d to be present", k)
		}
	}
	if tree.Root() != nil || tree.Len() != 0 {
		t.Fatalf("expected empty tree, have len=%d", tree.Len())
	}
}
