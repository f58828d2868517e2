package ostree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K any] struct {
	idTable map[*Node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labelled with their key and subtree size and are colored by
// balance factor.
func Tree2Dot[K any](tree *Tree[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	if !tree.IsEmpty() {
		ids := newtable[K]()
		tree.dotNode(tree.root, &ids, &nodelist, &edgelist)
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func (t *Tree[K]) dotNode(node *Node[K], ids *nodeids[K], nodes, edges *strings.Builder) {
	ID := ids.alloc(node)
	label := fmt.Sprintf("%v\\nn=%d", escapeDot(node.key), node.size)
	fmt.Fprintf(nodes, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node))
	if node.IsLeaf() {
		return
	}
	for i, child := range [2]*Node[K]{node.left, node.right} {
		if child == nil {
			// empty slots live in their own id space
			nilid := fmt.Sprintf("e%d_%d", ID, i)
			fmt.Fprintf(nodes, "\"%s\" %s;\n", nilid, emptyNode())
			fmt.Fprintf(edges, "\"%d\" -> \"%s\";\n", ID, nilid)
			continue
		}
		t.dotNode(child, ids, nodes, edges)
		fmt.Fprintf(edges, "\"%d\" -> \"%d\";\n", ID, ids.find(child))
	}
}

func escapeDot(key any) string {
	return strings.ReplaceAll(fmt.Sprint(key), "\"", "\\\"")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[K any](node *Node[K]) string {
	s := ",style=filled,shape=circle"
	b := node.Balance()
	if b < -1 || b > 1 {
		return s + fmt.Sprintf(",fillcolor=\"%s\"", unbalancedColor)
	}
	return s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[b+1])
}

// left-heavy, balanced, right-heavy
var hexcolors = [...]string{"#CCDDFF", "white", "#88BBFF"}

const unbalancedColor = "#ff6600"
