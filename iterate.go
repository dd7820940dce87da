package mtree

import (
	"fmt"
	"iter"
	"strings"
)

// Order is a traversal policy for iterators.
type Order int8

// Traversal orders.
const (
	Preorder     Order = iota // visit a node before its children
	Postorder                 // visit a node after all its children
	BreadthFirst              // visit nodes level by level
)

// DepthFirst is an alias for Postorder. Depth-first iteration visits nodes
// element by element in postorder, as the classic mutable tree node does.
const DepthFirst = Postorder

// listed iterates over a pre-computed sequence of nodes (paths).
const listed Order = -1

func (o Order) String() string {
	switch o {
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	case BreadthFirst:
		return "breadth-first"
	case listed:
		return "listed"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder returns the traversal order for a name like "pre", "postorder",
// "breadth-first" or "depth". Case is ignored.
func ParseOrder(name string) (Order, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "") {
	case "pre", "preorder":
		return Preorder, nil
	case "post", "postorder":
		return Postorder, nil
	case "depth", "depthfirst":
		return DepthFirst, nil
	case "breadth", "breadthfirst", "level", "levelorder":
		return BreadthFirst, nil
	}
	return Preorder, fmt.Errorf("%w: unknown traversal order %q", ErrIllegalArguments, name)
}

// Iterator is a lazy, finite sequence of tree nodes. Iterators start at a node
// and range over its subtree, including the start node itself. An iterator can
// be consumed only once; to iterate again, start a new traversal.
//
// Mutating a tree while an iterator is in progress yields unspecified results.
type Iterator[T any] struct {
	order  Order
	nodes  []*Node[T]     // stack for preorder, queue for breadth-first, list for paths
	frames []postFrame[T] // stack for postorder
}

type postFrame[T any] struct {
	node *Node[T]
	next int // index of next child to descend into
}

// Traverse starts an iteration over the subtree of n with a given order.
func (n *Node[T]) Traverse(order Order) *Iterator[T] {
	it := &Iterator[T]{order: order}
	switch order {
	case Preorder, BreadthFirst:
		it.nodes = []*Node[T]{n}
	case Postorder:
		it.frames = []postFrame[T]{{node: n}}
	default:
		panic(fmt.Sprintf("mtree: invalid traversal order %d", int(order)))
	}
	return it
}

// PreorderIterator returns an iterator visiting n, then recursively the
// subtrees of every child of n, in order.
func (n *Node[T]) PreorderIterator() *Iterator[T] {
	return n.Traverse(Preorder)
}

// PostorderIterator returns an iterator visiting the subtrees of every child of
// n, in order, and n itself last.
func (n *Node[T]) PostorderIterator() *Iterator[T] {
	return n.Traverse(Postorder)
}

// DepthFirstIterator returns an iterator identical to PostorderIterator.
func (n *Node[T]) DepthFirstIterator() *Iterator[T] {
	return n.Traverse(DepthFirst)
}

// BreadthFirstIterator returns an iterator visiting n and all nodes of its
// subtree with increasing distance from n, level by level.
func (n *Node[T]) BreadthFirstIterator() *Iterator[T] {
	return n.Traverse(BreadthFirst)
}

func listIterator[T any](nodes []*Node[T]) *Iterator[T] {
	return &Iterator[T]{order: listed, nodes: nodes}
}

// Order returns the traversal order of the iterator.
func (it *Iterator[T]) Order() Order {
	return it.order
}

// Next returns the next node of the sequence. If the iterator is exhausted,
// Next returns nil and false.
func (it *Iterator[T]) Next() (*Node[T], bool) {
	switch it.order {
	case Preorder:
		return it.nextPreorder()
	case Postorder:
		return it.nextPostorder()
	case BreadthFirst, listed:
		return it.nextQueued()
	}
	return nil, false
}

func (it *Iterator[T]) nextPreorder() (*Node[T], bool) {
	if len(it.nodes) == 0 {
		return nil, false
	}
	node := it.nodes[len(it.nodes)-1]
	it.nodes[len(it.nodes)-1] = nil
	it.nodes = it.nodes[:len(it.nodes)-1]
	for i := len(node.children) - 1; i >= 0; i-- { // first child on top of stack
		it.nodes = append(it.nodes, node.children[i])
	}
	return node, true
}

func (it *Iterator[T]) nextPostorder() (*Node[T], bool) {
	for len(it.frames) > 0 {
		top := &it.frames[len(it.frames)-1]
		if top.next < len(top.node.children) {
			child := top.node.children[top.next]
			top.next++
			it.frames = append(it.frames, postFrame[T]{node: child})
			continue
		}
		node := top.node
		it.frames = it.frames[:len(it.frames)-1]
		return node, true
	}
	return nil, false
}

func (it *Iterator[T]) nextQueued() (*Node[T], bool) {
	if len(it.nodes) == 0 {
		return nil, false
	}
	node := it.nodes[0]
	it.nodes[0] = nil
	it.nodes = it.nodes[1:]
	if it.order == BreadthFirst {
		it.nodes = append(it.nodes, node.children...)
	}
	return node, true
}

// Range returns the remaining nodes of the iterator as a Go iterator.
// Ranging over it consumes the iterator.
func (it *Iterator[T]) Range() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for node, ok := it.Next(); ok; node, ok = it.Next() {
			if !yield(node) {
				return
			}
		}
	}
}

// Collect consumes the iterator and returns the remaining nodes as a slice.
func (it *Iterator[T]) Collect() []*Node[T] {
	var nodes []*Node[T]
	for node := range it.Range() {
		nodes = append(nodes, node)
	}
	return nodes
}
