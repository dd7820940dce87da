/*
Package randtree creates random trees of integers for tests and demos.

Trees grow the same way the reference comparison tests of the tree node
model do: every node receives up to four children with random values, and
children are expanded with a probability of 0.8 as long as levels are left.
*/
package randtree

import (
	"math/rand/v2"

	"github.com/npillmayer/mtree"
)

// MaxChildren is the (exclusive) upper bound for the number of children per node.
const MaxChildren = 5

// New creates a random tree with root value 0 and at most levels+1 levels
// below the root.
func New(levels int, rnd *rand.Rand) *mtree.Node[int] {
	root := mtree.New(0)
	fill(root, levels, rnd)
	return root
}

// Seeded is a shorthand for New with a PCG source seeded by seed.
func Seeded(levels int, seed uint64) *mtree.Node[int] {
	return New(levels, rand.New(rand.NewPCG(seed, seed)))
}

func fill(node *mtree.Node[int], level int, rnd *rand.Rand) {
	for i, n := 0, rnd.IntN(MaxChildren); i < n; i++ {
		child := mtree.Empty[int]()
		child.SetValue(rnd.Int())
		if rnd.Float64() < 0.8 && level > 0 {
			fill(child, level-1, rnd)
		}
		if err := node.Add(child); err != nil {
			panic(err) // child is fresh, cannot happen
		}
	}
}
