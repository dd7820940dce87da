package mtree

import "fmt"

// Check validates the structural invariants of the subtree rooted at n:
// every child links back to the node holding it, and no node is reachable
// twice. It returns an error wrapping ErrStructuralViolation otherwise.
//
// Check is meant to be used in tests.
func (n *Node[T]) Check() error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrStructuralViolation)
	}
	seen := make(map[*Node[T]]struct{})
	for a := n.parent; a != nil; a = a.parent {
		if _, ok := seen[a]; ok {
			return fmt.Errorf("%w: cycle in parent chain of %v", ErrStructuralViolation, n)
		}
		seen[a] = struct{}{}
	}
	if _, ok := seen[n]; ok {
		return fmt.Errorf("%w: %v is its own ancestor", ErrStructuralViolation, n)
	}
	return n.checkNode(seen)
}

func (n *Node[T]) checkNode(seen map[*Node[T]]struct{}) error {
	if _, ok := seen[n]; ok {
		return fmt.Errorf("%w: %v reachable more than once", ErrStructuralViolation, n)
	}
	seen[n] = struct{}{}
	for i, ch := range n.children {
		if ch == nil {
			return fmt.Errorf("%w: nil child at index %d of %v", ErrStructuralViolation, i, n)
		}
		if ch.parent != n {
			return fmt.Errorf("%w: child %d of %v links to parent %v",
				ErrStructuralViolation, i, n, ch.parent)
		}
		if err := ch.checkNode(seen); err != nil {
			return err
		}
	}
	return nil
}
