package mtree

import (
	"fmt"
	"slices"
)

// PathFromAncestorIterator returns an iterator over the nodes from ancestor
// down to n, both inclusive. ancestor must be n or an ancestor of n, otherwise
// an error wrapping ErrInvalidRelationship is returned.
func (n *Node[T]) PathFromAncestorIterator(ancestor *Node[T]) (*Iterator[T], error) {
	if ancestor == nil {
		return nil, fmt.Errorf("%w: ancestor is nil", ErrInvalidRelationship)
	}
	path, ok := n.pathFrom(ancestor)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not an ancestor of %v", ErrInvalidRelationship, ancestor, n)
	}
	return listIterator(path), nil
}

// Path returns the nodes from the root of the tree down to n, both inclusive.
func (n *Node[T]) Path() []*Node[T] {
	path, ok := n.pathFrom(nil)
	assert(ok, "Path: root not found")
	return path
}

// ValuePath returns the values of the nodes along Path().
func (n *Node[T]) ValuePath() []T {
	path := n.Path()
	values := make([]T, len(path))
	for i, node := range path {
		values[i] = node.value
	}
	return values
}

// pathFrom walks up the parent chain of n until it hits ancestor and returns
// the reversed chain. With ancestor == nil it stops at the root.
func (n *Node[T]) pathFrom(ancestor *Node[T]) ([]*Node[T], bool) {
	path := make([]*Node[T], 0, 8)
	for a := n; a != nil; a = a.parent {
		path = append(path, a)
		if a == ancestor {
			slices.Reverse(path)
			return path, true
		}
	}
	if ancestor != nil {
		return nil, false
	}
	slices.Reverse(path)
	return path, true
}
