package mtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of the tree rooted at root in Graphviz DOT
// format (for debugging purposes). Nodes are labeled with their values, edges
// run from parents to children in child order.
func Tree2Dot[T any](root *Node[T], w io.Writer) error {
	if root == nil {
		return ErrIllegalArguments
	}
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	for node := range root.PreorderIterator().Range() {
		ID := ids.alloc(node)
		nodelist.WriteString(fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, dotLabel(node), nodeDotStyles(node.IsLeaf())))
		if node != root && node.parent != nil {
			edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\";\n", ids.find(node.parent), ID))
		}
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err := io.WriteString(w, "}\n")
	return err
}

func dotLabel[T any](node *Node[T]) string {
	if !node.hasValue {
		return ""
	}
	s := fmt.Sprint(node.value)
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
