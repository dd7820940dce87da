package mtree

// Equal reports whether two trees are equal: both have the same structure,
// and corresponding nodes have equal values (or both have no value).
// Parent links of the two roots are not compared.
func Equal[T comparable](a, b *Node[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares node values with an equality
// function. The trees may carry values of different types.
func EqualFunc[A, B any](a *Node[A], b *Node[B], eq func(A, B) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a.children) != len(b.children) || a.hasValue != b.hasValue {
		return false
	}
	if a.hasValue && !eq(a.value, b.value) {
		return false
	}
	for i := range a.children {
		if !EqualFunc(a.children[i], b.children[i], eq) {
			return false
		}
	}
	return true
}

// Copy creates a deep copy of the subtree rooted at n. The copy is a
// standalone tree. Values are copied by assignment.
func (n *Node[T]) Copy() *Node[T] {
	return Map(n, func(v T) T { return v })
}

// Map creates a standalone tree with the same structure as the tree rooted
// at n, converting every value with fn. Nodes without a value stay without
// a value, fn is not called for them.
func Map[A, B any](n *Node[A], fn func(A) B) *Node[B] {
	if n == nil {
		return nil
	}
	m := &Node[B]{hasValue: n.hasValue}
	if n.hasValue {
		m.value = fn(n.value)
	}
	if len(n.children) > 0 {
		m.children = make([]*Node[B], len(n.children))
		for i, ch := range n.children {
			c := Map(ch, fn)
			c.parent = m
			m.children[i] = c
		}
	}
	return m
}
