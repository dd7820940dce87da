package mtree

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func val(n *Node[int]) any {
	if n == nil {
		return nil
	}
	return n.Value()
}

func TestDepthLevelLeaves(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	root, nodes := sampleTree(t)
	if root.LeafCount() != 3 || root.Depth() != 2 || nodes[21].Level() != 2 {
		t.Errorf("expected leafCount=3, depth=2, level(21)=2; got %d, %d, %d",
			root.LeafCount(), root.Depth(), nodes[21].Level())
	}
	if nodes[20].Depth() != 1 || nodes[22].Depth() != 0 || root.Level() != 0 {
		t.Errorf("depth/level wrong for inner nodes")
	}
	if root.Size() != 5 || nodes[20].LeafCount() != 2 || nodes[10].LeafCount() != 1 {
		t.Errorf("size/leaf count wrong")
	}
	if root.Root() != root || nodes[22].Root() != root || !root.IsRoot() || nodes[10].IsRoot() {
		t.Errorf("root detection wrong")
	}
	if root.FirstLeaf() != nodes[10] || root.LastLeaf() != nodes[22] || nodes[21].FirstLeaf() != nodes[21] {
		t.Errorf("first/last leaf wrong")
	}
	if root.FirstChild() != nodes[10] || root.LastChild() != nodes[20] || nodes[22].FirstChild() != nil {
		t.Errorf("first/last child wrong")
	}
}

func TestSiblings(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	root, nodes := sampleTree(t)
	if root.SiblingCount() != 1 || nodes[21].SiblingCount() != 2 {
		t.Errorf("sibling counts wrong")
	}
	tests := []struct {
		node       int
		next, prev any
	}{
		{0, nil, nil},
		{10, 20, nil},
		{20, nil, 10},
		{21, 22, nil},
		{22, nil, 21},
	}
	for _, tt := range tests {
		n := nodes[tt.node]
		if got := val(n.NextSibling()); got != tt.next {
			t.Errorf("NextSibling(%d) = %v, expected %v", tt.node, got, tt.next)
		}
		if got := val(n.PreviousSibling()); got != tt.prev {
			t.Errorf("PreviousSibling(%d) = %v, expected %v", tt.node, got, tt.prev)
		}
	}
}

func TestPreorderNeighbours(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	_, nodes := sampleTree(t)
	tests := []struct {
		node                         int
		next, prev, nextLeaf, prevLf any
	}{
		{0, 10, nil, nil, nil},
		{10, 20, 0, 21, nil},
		{20, 21, 10, nil, 10},
		{21, 22, 20, 22, 10},
		{22, nil, 21, nil, 21},
	}
	for _, tt := range tests {
		n := nodes[tt.node]
		if got := val(n.NextNode()); got != tt.next {
			t.Errorf("NextNode(%d) = %v, expected %v", tt.node, got, tt.next)
		}
		if got := val(n.PreviousNode()); got != tt.prev {
			t.Errorf("PreviousNode(%d) = %v, expected %v", tt.node, got, tt.prev)
		}
		if got := val(n.NextLeaf()); got != tt.nextLeaf {
			t.Errorf("NextLeaf(%d) = %v, expected %v", tt.node, got, tt.nextLeaf)
		}
		if got := val(n.PreviousLeaf()); got != tt.prevLf {
			t.Errorf("PreviousLeaf(%d) = %v, expected %v", tt.node, got, tt.prevLf)
		}
	}
}
