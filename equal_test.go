package mtree

import (
	"strconv"
	"testing"
)

func TestEqual(t *testing.T) {
	a, _ := sampleTree(t)
	b, nodes := sampleTree(t)
	if !Equal(a, b) {
		t.Fatalf("expected independently built trees to be equal")
	}
	nodes[21].SetValue(-1)
	if Equal(a, b) {
		t.Errorf("expected trees with different values to differ")
	}
	nodes[21].SetValue(21)
	nodes[21].ClearValue()
	if Equal(a, b) {
		t.Errorf("presence of values should be compared")
	}
	nodes[21].SetValue(21)
	mustAdd(t, nodes[10], New(11))
	if Equal(a, b) {
		t.Errorf("expected trees with different structure to differ")
	}
	if !Equal[int](nil, nil) || Equal(a, nil) {
		t.Errorf("nil trees not handled correctly")
	}
}

func TestCopyAndMap(t *testing.T) {
	root, nodes := sampleTree(t)
	nodes[10].ClearValue()
	cp := root.Copy()
	if !Equal(root, cp) {
		t.Fatalf("copy differs from original")
	}
	if err := cp.Check(); err != nil {
		t.Fatal(err)
	}
	cpSub := nodes[20].Copy()
	if !cpSub.IsRoot() || cpSub.Size() != 3 {
		t.Errorf("copy of subtree should be a standalone tree of 3 nodes")
	}
	strs := Map(root, strconv.Itoa)
	if !EqualFunc(root, strs, func(i int, s string) bool { return strconv.Itoa(i) == s }) {
		t.Errorf("mapped tree does not correspond to original")
	}
	if strs.FirstChild().HasValue() {
		t.Errorf("absent values should stay absent when mapping")
	}
	if got := strs.LastLeaf().ValuePath(); len(got) != 3 || got[2] != "22" {
		t.Errorf("unexpected value path in mapped tree: %v", got)
	}
}
