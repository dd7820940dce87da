package mtree

import (
	"fmt"
)

// Node is the base type our trees are built of. Each node carries an optional
// value of type parameter T and maintains an ordered slice of children.
//
// A node created by
//
//	&Node[T]{}
//
// is a valid root node without a value.
type Node[T any] struct {
	value    T          // payload of the node
	hasValue bool       // false for nodes without a value
	parent   *Node[T]   // parent node of this node, nil for roots
	children []*Node[T] // children nodes, owned by this node
}

// New creates a standalone node with a given value.
func New[T any](value T) *Node[T] {
	return &Node[T]{value: value, hasValue: true}
}

// Empty creates a standalone node without a value.
func Empty[T any]() *Node[T] {
	return &Node[T]{}
}

func (n *Node[T]) String() string {
	if n == nil {
		return "(Node nil)"
	}
	if !n.hasValue {
		return fmt.Sprintf("(Node #ch=%d ·)", len(n.children))
	}
	return fmt.Sprintf("(Node #ch=%d %v)", len(n.children), n.value)
}

// --- Values ----------------------------------------------------------------

// Value returns the value of a node, or the zero value of T if the node
// has no value.
func (n *Node[T]) Value() T {
	return n.value
}

// HasValue returns true if a value has been set for n.
func (n *Node[T]) HasValue() bool {
	return n.hasValue
}

// SetValue sets the value of a node.
func (n *Node[T]) SetValue(value T) {
	n.value = value
	n.hasValue = true
}

// ClearValue removes the value of a node.
func (n *Node[T]) ClearValue() {
	var zero T
	n.value = zero
	n.hasValue = false
}

// --- Children --------------------------------------------------------------

// Parent returns the parent node or nil (for the root of the tree).
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// ChildCount returns the number of children-nodes for a node.
func (n *Node[T]) ChildCount() int {
	return len(n.children)
}

// Child returns the child at position i. If i is not in [0, ChildCount()),
// an error wrapping ErrIndexOutOfRange is returned.
func (n *Node[T]) Child(i int) (*Node[T], error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: child index %d, child count %d", ErrIndexOutOfRange, i, len(n.children))
	}
	return n.children[i], nil
}

// Children returns a slice with all children of a node. The slice is a copy
// and may be modified by clients without affecting the tree.
func (n *Node[T]) Children() []*Node[T] {
	c := make([]*Node[T], len(n.children))
	copy(c, n.children)
	return c
}

// ChildIndex returns the index of a child within the list of children
// of n, or -1 if ch is not a child of n.
func (n *Node[T]) ChildIndex(ch *Node[T]) int {
	if ch == nil || ch.parent != n {
		return -1
	}
	for i, child := range n.children {
		if child == ch {
			return i
		}
	}
	return -1
}

// --- Mutation --------------------------------------------------------------

// Add appends a child node as the last child of n.
// The child must not be attached to a parent, and must not be n itself
// or an ancestor of n. Otherwise an error wrapping ErrStructuralViolation
// is returned.
func (n *Node[T]) Add(child *Node[T]) error {
	return n.Insert(len(n.children), child)
}

// Insert inserts a child node at position index, shifting children at later
// positions to the right. index may be equal to ChildCount(), in which case
// Insert works like Add. Any other index outside [0, ChildCount()] results in
// an error wrapping ErrIndexOutOfRange.
func (n *Node[T]) Insert(index int, child *Node[T]) error {
	if err := n.checkAttachable(child); err != nil {
		tracer().Debugf("mtree: cannot insert %v into %v: %v", child, n, err)
		return err
	}
	if index < 0 || index > len(n.children) {
		return fmt.Errorf("%w: insert index %d, child count %d", ErrIndexOutOfRange, index, len(n.children))
	}
	n.children = append(n.children, nil) // make room for one child
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	tracer().Debugf("mtree: inserted %v into %v at %d", child, n, index)
	return nil
}

func (n *Node[T]) checkAttachable(child *Node[T]) error {
	if child == nil {
		return fmt.Errorf("%w: child is nil", ErrStructuralViolation)
	}
	if child.parent != nil {
		return fmt.Errorf("%w: child is already attached to a parent", ErrStructuralViolation)
	}
	for a := n; a != nil; a = a.parent {
		if a == child {
			return fmt.Errorf("%w: child is an ancestor of the new parent", ErrStructuralViolation)
		}
	}
	return nil
}

// Remove detaches the child at position index from n and returns it.
// The child's own children are unaffected; it becomes the root of its subtree.
// If index is not in [0, ChildCount()), an error wrapping ErrIndexOutOfRange
// is returned.
func (n *Node[T]) Remove(index int) (*Node[T], error) {
	if index < 0 || index >= len(n.children) {
		return nil, fmt.Errorf("%w: remove index %d, child count %d", ErrIndexOutOfRange, index, len(n.children))
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil // do not keep a reference to child
	n.children = n.children[:len(n.children)-1]
	child.parent = nil
	tracer().Debugf("mtree: removed %v from %v at %d", child, n, index)
	return child, nil
}

// RemoveChild detaches ch from n. If ch is not a child of n, an error
// wrapping ErrNotAChild is returned.
func (n *Node[T]) RemoveChild(ch *Node[T]) error {
	i := n.ChildIndex(ch)
	if i < 0 {
		return fmt.Errorf("%w: cannot remove %v from %v", ErrNotAChild, ch, n)
	}
	_, err := n.Remove(i)
	return err
}

// RemoveAllChildren detaches all children of n.
func (n *Node[T]) RemoveAllChildren() {
	for _, ch := range n.children {
		ch.parent = nil
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Detach removes a node from its parent and returns it.
// For root nodes Detach is a no-op.
func (n *Node[T]) Detach() *Node[T] {
	if n.parent != nil {
		err := n.parent.RemoveChild(n)
		assert(err == nil, "Detach: node not registered with its parent")
	}
	return n
}
