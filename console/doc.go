/*
Package console prints order-statistics trees to a terminal.

Trees are drawn sideways: the right subtree above a node, the left subtree
below it, every level indented a bit further. Each node is shown with its
balance factor, colored by how far it leans to one side. Reading the output
with the head tilted to the left shows the tree in its usual orientation.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) Norbert Pillmayer. All rights reserved.

Please refer to the License file in the repository root.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ostree'
func tracer() tracing.Trace {
	return tracing.Select("ostree")
}
