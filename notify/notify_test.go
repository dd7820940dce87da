package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/mtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEditorBroadcastsChanges(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	root := mtree.New(0)
	ed := NewEditor(ctx, root)
	defer ed.Close()
	sub, err := ed.Subscribe(ctx, 16)
	if err != nil {
		t.Fatal(err)
	}
	child := mtree.New(10)
	if err := ed.Add(root, child); err != nil {
		t.Fatal(err)
	}
	if err := ed.Insert(root, 0, mtree.New(5)); err != nil {
		t.Fatal(err)
	}
	if err := ed.SetValue(child, 11); err != nil {
		t.Fatal(err)
	}
	if _, err := ed.Remove(root, 0); err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		kind  Kind
		index int
		size  int
	}{
		{Inserted, 0, 2},
		{Inserted, 0, 3},
		{Updated, -1, 3},
		{Removed, 0, 2},
	}
	for i, e := range expected {
		change, ok := sub.Next(ctx)
		if !ok {
			t.Fatalf("change #%d not received", i)
		}
		t.Logf("change #%d = %v", i, change)
		if change.Kind != e.kind || change.Index != e.index || change.Size != e.size {
			t.Errorf("change #%d: expected %s @%d size=%d, got %v", i, e.kind, e.index, e.size, change)
		}
	}
	if root.ChildCount() != 1 || root.FirstChild().Value() != 11 {
		t.Errorf("edits not applied to tree")
	}
}

func TestEditorRejectsForeignNodes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx := context.Background()
	ed := NewEditor(ctx, mtree.New("root"))
	defer ed.Close()
	foreign := mtree.New("foreign")
	if err := ed.Add(foreign, mtree.New("x")); !errors.Is(err, mtree.ErrInvalidRelationship) {
		t.Errorf("expected ErrInvalidRelationship, got %v", err)
	}
	if err := ed.SetValue(foreign, "y"); !errors.Is(err, mtree.ErrInvalidRelationship) {
		t.Errorf("expected ErrInvalidRelationship, got %v", err)
	}
	if err := ed.Add(ed.Root(), ed.Root()); !errors.Is(err, mtree.ErrStructuralViolation) {
		t.Errorf("expected ErrStructuralViolation, got %v", err)
	}
	if _, err := ed.Remove(ed.Root(), 3); !errors.Is(err, mtree.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSubscriptionEndsOnClose(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ed := NewEditor[int](ctx, nil)
	sub, err := ed.Subscribe(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	ed.Close()
	if _, ok := sub.Next(ctx); ok {
		t.Errorf("expected subscription to end after Close")
	}
	if err := ed.SetValue(ed.Root(), 1); err != nil { // tree stays editable
		t.Error(err)
	}
}

func TestStalledSubscriberDoesNotBlockEditor(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	root := mtree.New(0)
	ed := NewEditor(ctx, root)
	stalled, err := ed.Subscribe(ctx, 1) // never read
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() {
		for i := 1; i <= 4; i++ {
			if err := ed.Add(root, mtree.New(i)); err != nil {
				done <- err
				return
			}
		}
		ed.Close()
		done <- nil
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("editor blocked by stalled subscriber, tree has %d children", root.ChildCount())
	}
	if root.ChildCount() != 4 {
		t.Errorf("expected 4 children, got %d", root.ChildCount())
	}
	change, ok := stalled.Next(ctx) // buffered change survives, the rest was dropped
	if !ok || change.Kind != Inserted || change.Size != 2 {
		t.Errorf("expected first insertion to be buffered, got %v, %v", change, ok)
	}
	if _, ok := stalled.Next(ctx); ok {
		t.Errorf("expected subscription to end after buffered change")
	}
}

func TestSubscribeToClosedEditor(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ed := NewEditor[int](context.Background(), nil)
	ed.Close()
	if _, err := ed.Subscribe(context.Background(), 4); !errors.Is(err, mtree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for closed editor, got %v", err)
	}
}
