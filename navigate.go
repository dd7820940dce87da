package mtree

// Depth returns the height of the subtree rooted at n, i.e. the length of the
// longest downward path from n to a leaf. Leaves have depth 0.
func (n *Node[T]) Depth() int {
	var depth int
	for _, ch := range n.children {
		if d := ch.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Level returns the distance from the root of the tree to n.
// The root is at level 0.
func (n *Node[T]) Level() int {
	var level int
	for a := n.parent; a != nil; a = a.parent {
		level++
	}
	return level
}

// Root returns the root of the tree containing n.
func (n *Node[T]) Root() *Node[T] {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// IsRoot returns true if n has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf returns true if n has no children.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// Size returns the number of nodes in the subtree rooted at n, including n.
func (n *Node[T]) Size() int {
	size := 1
	for _, ch := range n.children {
		size += ch.Size()
	}
	return size
}

// --- Children and siblings -------------------------------------------------

// FirstChild returns the first child of n, or nil if n is a leaf.
func (n *Node[T]) FirstChild() *Node[T] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child of n, or nil if n is a leaf.
func (n *Node[T]) LastChild() *Node[T] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// SiblingCount returns the number of siblings of n, including n itself.
// Root nodes have a sibling count of 1.
func (n *Node[T]) SiblingCount() int {
	if n.parent == nil {
		return 1
	}
	return len(n.parent.children)
}

// NextSibling returns the next child of n's parent, or nil if n is the
// root or the last child of its parent.
func (n *Node[T]) NextSibling() *Node[T] {
	if n.parent == nil {
		return nil
	}
	sibling, err := n.parent.ChildAfter(n)
	assert(err == nil, "NextSibling: node not registered with its parent")
	return sibling
}

// PreviousSibling returns the previous child of n's parent, or nil if n is
// the root or the first child of its parent.
func (n *Node[T]) PreviousSibling() *Node[T] {
	if n.parent == nil {
		return nil
	}
	sibling, err := n.parent.ChildBefore(n)
	assert(err == nil, "PreviousSibling: node not registered with its parent")
	return sibling
}

// --- Preorder neighbours ---------------------------------------------------

// NextNode returns the node following n in a preorder traversal of the whole
// tree containing n, or nil if n is the last node of the traversal.
func (n *Node[T]) NextNode() *Node[T] {
	if len(n.children) > 0 {
		return n.children[0]
	}
	for a := n; a != nil; a = a.parent {
		if next := a.NextSibling(); next != nil {
			return next
		}
	}
	return nil
}

// PreviousNode returns the node preceding n in a preorder traversal of the
// whole tree containing n, or nil if n is the root.
func (n *Node[T]) PreviousNode() *Node[T] {
	if n.parent == nil {
		return nil
	}
	if prev := n.PreviousSibling(); prev != nil {
		return prev.LastLeaf()
	}
	return n.parent
}

// --- Leaves ----------------------------------------------------------------

// FirstLeaf returns the first leaf of the subtree rooted at n, found by
// repeatedly descending into the first child. A leaf is its own first leaf.
func (n *Node[T]) FirstLeaf() *Node[T] {
	leaf := n
	for len(leaf.children) > 0 {
		leaf = leaf.children[0]
	}
	return leaf
}

// LastLeaf returns the last leaf of the subtree rooted at n, found by
// repeatedly descending into the last child. A leaf is its own last leaf.
func (n *Node[T]) LastLeaf() *Node[T] {
	leaf := n
	for len(leaf.children) > 0 {
		leaf = leaf.children[len(leaf.children)-1]
	}
	return leaf
}

// NextLeaf returns the first leaf following the subtree of n in a preorder
// traversal of the whole tree, or nil if there is none. For a leaf this is
// the next leaf of the tree. Root nodes have no next leaf.
func (n *Node[T]) NextLeaf() *Node[T] {
	for a := n; a.parent != nil; a = a.parent {
		if next := a.NextSibling(); next != nil {
			return next.FirstLeaf()
		}
	}
	return nil
}

// PreviousLeaf returns the last leaf preceding n in a preorder traversal of
// the whole tree, or nil if there is none. Root nodes have no previous leaf.
func (n *Node[T]) PreviousLeaf() *Node[T] {
	for a := n; a.parent != nil; a = a.parent {
		if prev := a.PreviousSibling(); prev != nil {
			return prev.LastLeaf()
		}
	}
	return nil
}

// LeafCount returns the number of leaves in the subtree rooted at n.
// A leaf counts itself.
func (n *Node[T]) LeafCount() int {
	if len(n.children) == 0 {
		return 1
	}
	var count int
	for _, ch := range n.children {
		count += ch.LeafCount()
	}
	return count
}
