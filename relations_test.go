package mtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAncestry(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	root, nodes := sampleTree(t)
	if !root.IsAncestor(nodes[21]) || !nodes[20].IsAncestor(nodes[22]) {
		t.Errorf("expected root and 20 to be ancestors of 21/22")
	}
	if nodes[10].IsAncestor(nodes[21]) || nodes[21].IsAncestor(root) {
		t.Errorf("unexpected ancestor relationship")
	}
	if !nodes[21].IsDescendant(root) || root.IsDescendant(nodes[21]) {
		t.Errorf("IsDescendant should invert IsAncestor")
	}
	for _, n := range nodes {
		if n.IsAncestor(n) || n.IsDescendant(n) {
			t.Errorf("node %v must not be its own ancestor or descendant", n)
		}
	}
	if root.IsAncestor(nil) || root.IsDescendant(nil) {
		t.Errorf("nil is neither ancestor nor descendant")
	}
}

func TestSharedAncestor(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	root, nodes := sampleTree(t)
	tests := []struct {
		a, b, want int
	}{
		{21, 22, 20},
		{21, 10, 0},
		{20, 22, 20},
		{22, 22, 22},
		{0, 21, 0},
	}
	for _, tt := range tests {
		a, b := nodes[tt.a], nodes[tt.b]
		if got := a.SharedAncestor(b); got != nodes[tt.want] {
			t.Errorf("SharedAncestor(%d, %d) = %v, expected %d", tt.a, tt.b, got, tt.want)
		}
		if a.SharedAncestor(b) != b.SharedAncestor(a) {
			t.Errorf("SharedAncestor(%d, %d) is not symmetric", tt.a, tt.b)
		}
	}
	other := New(99)
	if root.SharedAncestor(other) != nil || nodes[21].SharedAncestor(nil) != nil {
		t.Errorf("expected no shared ancestor for disjoint trees")
	}
	if root.IsRelated(other) || !nodes[10].IsRelated(nodes[22]) {
		t.Errorf("IsRelated not working")
	}
}

func TestChildRelations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	root, nodes := sampleTree(t)
	if !root.IsChild(nodes[10]) || root.IsChild(nodes[21]) || root.IsChild(root) {
		t.Errorf("IsChild not working")
	}
	after, err := root.ChildAfter(nodes[10])
	if err != nil || after != nodes[20] {
		t.Errorf("expected 20 after 10, got %v, %v", after, err)
	}
	after, err = root.ChildAfter(nodes[20])
	if err != nil || after != nil {
		t.Errorf("expected nothing after last child, got %v, %v", after, err)
	}
	before, err := nodes[20].ChildBefore(nodes[22])
	if err != nil || before != nodes[21] {
		t.Errorf("expected 21 before 22, got %v, %v", before, err)
	}
	before, err = nodes[20].ChildBefore(nodes[21])
	if err != nil || before != nil {
		t.Errorf("expected nothing before first child, got %v, %v", before, err)
	}
	if _, err := root.ChildAfter(nodes[21]); !errors.Is(err, ErrNotAChild) {
		t.Errorf("expected ErrNotAChild, got %v", err)
	}
	if _, err := root.ChildBefore(root); !errors.Is(err, ErrNotAChild) {
		t.Errorf("expected ErrNotAChild, got %v", err)
	}
}

func TestIsNodeSibling(t *testing.T) {
	root, nodes := sampleTree(t)
	if !nodes[21].IsNodeSibling(nodes[22]) || !nodes[10].IsNodeSibling(nodes[20]) {
		t.Errorf("expected children of one parent to be siblings")
	}
	if !nodes[21].IsNodeSibling(nodes[21]) {
		t.Errorf("expected non-root node to be its own sibling")
	}
	if nodes[10].IsNodeSibling(nodes[21]) || root.IsNodeSibling(root) || root.IsNodeSibling(New(1)) {
		t.Errorf("unexpected sibling relationship")
	}
}
