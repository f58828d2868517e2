/*
Package ostree implements an ordered index as an AVL tree augmented with
subtree sizes, answering order-statistics queries in logarithmic time.

# Order-Statistics Trees

An order-statistics tree is a binary search tree where every node additionally
records the number of nodes in its subtree. With this counter in place, two
positional queries become as cheap as a lookup:

  - rank: how many keys are smaller than or equal to a given key,
  - select: which key is the k-th smallest one.

The tree keeps itself height-balanced following the rules of Adelson-Velsky
and Landis (AVL): for every node, the heights of its two subtrees differ by at
most one. Every mutating operation edits the tree at a leaf-ward position and
then walks up to the root along parent links, re-deriving heights and subtree
sizes and rotating wherever the balance rule is broken.

	Operation                 |   Cost
	--------------------------+-----------
	Insert                    |   O(log n)
	Delete                    |   O(log n)
	Find                      |   O(log n)
	GetNumSmallerOrEqualTo    |   O(log n)
	FindKth                   |   O(log n)
	InOrder                   |   O(n)

Duplicate keys are permitted. Equal keys are always routed to the right on
insertion, therefore duplicates persist as distinct nodes.

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to serialize access to it, e.g. with a sync.Mutex guarding
the whole structure.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) Norbert Pillmayer. All rights reserved.

Please refer to the License file in the repository root.
*/
package ostree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
