package mtree

import "fmt"

// IsAncestor returns true if n is a proper ancestor of other, i.e., other lies
// strictly below n. A node is not an ancestor of itself.
func (n *Node[T]) IsAncestor(other *Node[T]) bool {
	if other == nil {
		return false
	}
	for a := other.parent; a != nil; a = a.parent {
		if a == n {
			return true
		}
	}
	return false
}

// IsDescendant returns true if n lies strictly below other.
// A node is not a descendant of itself.
func (n *Node[T]) IsDescendant(other *Node[T]) bool {
	if other == nil {
		return false
	}
	return other.IsAncestor(n)
}

// SharedAncestor returns the deepest node which is an ancestor of both n and
// other, where nodes count as part of their own ancestor chains. If n and
// other are members of different trees, SharedAncestor returns nil.
func (n *Node[T]) SharedAncestor(other *Node[T]) *Node[T] {
	if other == nil {
		return nil
	}
	if other == n {
		return n
	}
	l1, l2 := n.Level(), other.Level()
	a, b := n, other
	for ; l1 > l2; l1-- { // bring both nodes to the same level
		a = a.parent
	}
	for ; l2 > l1; l2-- {
		b = b.parent
	}
	for a != b { // ascend in lockstep
		a, b = a.parent, b.parent
	}
	return a // nil for disjoint trees
}

// IsRelated returns true if n and other belong to the same tree, i.e., have
// the same root.
func (n *Node[T]) IsRelated(other *Node[T]) bool {
	return other != nil && n.Root() == other.Root()
}

// IsChild returns true if other is a direct child of n.
func (n *Node[T]) IsChild(other *Node[T]) bool {
	return other != nil && other.parent == n
}

// ChildAfter returns the child of n immediately following child, or nil if
// child is the last child of n. If child is not a child of n, an error
// wrapping ErrNotAChild is returned.
func (n *Node[T]) ChildAfter(child *Node[T]) (*Node[T], error) {
	i := n.ChildIndex(child)
	if i < 0 {
		return nil, fmt.Errorf("%w: %v is not a child of %v", ErrNotAChild, child, n)
	}
	if i+1 < len(n.children) {
		return n.children[i+1], nil
	}
	return nil, nil
}

// ChildBefore returns the child of n immediately preceding child, or nil if
// child is the first child of n. If child is not a child of n, an error
// wrapping ErrNotAChild is returned.
func (n *Node[T]) ChildBefore(child *Node[T]) (*Node[T], error) {
	i := n.ChildIndex(child)
	if i < 0 {
		return nil, fmt.Errorf("%w: %v is not a child of %v", ErrNotAChild, child, n)
	}
	if i > 0 {
		return n.children[i-1], nil
	}
	return nil, nil
}

// IsNodeSibling returns true if n and other are both non-root nodes
// sharing the same parent. A non-root node is a sibling of itself.
func (n *Node[T]) IsNodeSibling(other *Node[T]) bool {
	return other != nil && n.parent != nil && n.parent == other.parent
}
