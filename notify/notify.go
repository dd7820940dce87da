/*
Package notify broadcasts structural changes of a tree to subscribers.

An Editor owns a tree and performs all mutations on it. After every
successful mutation a Change is published to all subscribers. Subscribers
receive changes only after a mutation has completed, so they never observe a
tree in the middle of an update. Clients, e.g. an evolutionary engine
monitoring a genome, may subscribe from other goroutines:

	ed := notify.NewEditor(ctx, genome)
	sub, _ := ed.Subscribe(ctx, 16)
	go func() {
	    for ch, ok := sub.Next(ctx); ok; ch, ok = sub.Next(ctx) {
	        log(ch)
	    }
	}()
	ed.Add(genome, mtree.New(42))

Changes are published without waiting for subscribers. A subscriber whose
buffer is full misses the change; size the capacity of a subscription for
the bursts of edits it has to keep up with.

Editors do not lock the tree. Nodes referenced by a Change are handles into
the live tree; subscribers must not mutate them and should not read them
while the editor's owner goes on editing.
*/
package notify

import (
	"context"
	"fmt"

	"github.com/guiguan/caster"
	"github.com/npillmayer/mtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where T usually denotes a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Kind is the kind of a change.
type Kind int8

// Kinds of changes.
const (
	Inserted Kind = iota // a child has been inserted
	Removed              // a child has been removed
	Updated              // the value of a node has been set
)

func (k Kind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Updated:
		return "updated"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Change describes a completed mutation of a tree.
type Change[T any] struct {
	Kind   Kind
	Parent *mtree.Node[T] // parent the child was inserted into or removed from; nil for updates
	Node   *mtree.Node[T] // node inserted, removed or updated
	Index  int            // child index for insertions and removals
	Value  T              // value after an update
	Size   int            // number of nodes in the edited tree after the change
}

func (c Change[T]) String() string {
	return fmt.Sprintf("(%s %v @%d size=%d)", c.Kind, c.Node, c.Index, c.Size)
}

// Editor performs mutations on a tree and broadcasts the resulting changes.
type Editor[T any] struct {
	root *mtree.Node[T]
	cast *caster.Caster
}

// NewEditor creates an editor for the tree rooted at root. Broadcasting stops
// when ctx is done or Close is called.
func NewEditor[T any](ctx context.Context, root *mtree.Node[T]) *Editor[T] {
	if root == nil {
		root = mtree.Empty[T]()
	}
	return &Editor[T]{
		root: root,
		cast: caster.New(ctx), // we will broadcast messages when the tree changes
	}
}

// Root returns the root of the edited tree.
func (e *Editor[T]) Root() *mtree.Node[T] {
	return e.root
}

func (e *Editor[T]) checkMember(n *mtree.Node[T]) error {
	if n == nil || n.Root() != e.root {
		return fmt.Errorf("%w: node %v is not part of the edited tree", mtree.ErrInvalidRelationship, n)
	}
	return nil
}

// Add appends child to the children of parent, which must be a member of the
// edited tree.
func (e *Editor[T]) Add(parent, child *mtree.Node[T]) error {
	if err := e.checkMember(parent); err != nil {
		return err
	}
	return e.Insert(parent, parent.ChildCount(), child)
}

// Insert inserts child at index into the children of parent, which must be a
// member of the edited tree.
func (e *Editor[T]) Insert(parent *mtree.Node[T], index int, child *mtree.Node[T]) error {
	if err := e.checkMember(parent); err != nil {
		return err
	}
	if err := parent.Insert(index, child); err != nil {
		return err
	}
	e.publish(Change[T]{Kind: Inserted, Parent: parent, Node: child, Index: index})
	return nil
}

// Remove detaches the child at index from parent, which must be a member of
// the edited tree, and returns it.
func (e *Editor[T]) Remove(parent *mtree.Node[T], index int) (*mtree.Node[T], error) {
	if err := e.checkMember(parent); err != nil {
		return nil, err
	}
	child, err := parent.Remove(index)
	if err != nil {
		return nil, err
	}
	e.publish(Change[T]{Kind: Removed, Parent: parent, Node: child, Index: index})
	return child, nil
}

// SetValue sets the value of node, which must be a member of the edited tree.
func (e *Editor[T]) SetValue(node *mtree.Node[T], value T) error {
	if err := e.checkMember(node); err != nil {
		return err
	}
	node.SetValue(value)
	e.publish(Change[T]{Kind: Updated, Node: node, Index: -1, Value: value})
	return nil
}

// publish never blocks the editing goroutine: subscribers with a full buffer
// drop the change.
func (e *Editor[T]) publish(change Change[T]) {
	change.Size = e.root.Size()
	if !e.cast.TryPub(change) {
		tracer().Debugf("notify: change %v not published, broadcaster closed", change)
		return
	}
	tracer().Debugf("notify: published %v", change)
}

// Subscription receives changes from an editor.
type Subscription[T any] struct {
	ch    <-chan interface{}
	unsub func() bool
}

// Subscribe registers a new subscriber. capacity is the number of changes
// buffered for the subscriber; changes arriving at a full buffer are dropped.
// The subscription ends when ctx is done, on Cancel, or when the editor is
// closed. Subscribing to a closed editor is an error.
func (e *Editor[T]) Subscribe(ctx context.Context, capacity uint) (*Subscription[T], error) {
	select {
	case <-e.cast.Done():
		return nil, fmt.Errorf("%w: editor is closed", mtree.ErrIllegalArguments)
	default:
	}
	ch, _ := e.cast.Sub(ctx, capacity) // a racing Close hands out a closed channel
	return &Subscription[T]{
		ch:    ch,
		unsub: func() bool { return e.cast.Unsub(ch) },
	}, nil
}

// Next waits for the next change. It returns false if the subscription has
// ended or ctx is done.
func (s *Subscription[T]) Next(ctx context.Context) (Change[T], bool) {
	select {
	case msg, ok := <-s.ch:
		if !ok {
			return Change[T]{}, false
		}
		change, ok := msg.(Change[T])
		return change, ok
	case <-ctx.Done():
		return Change[T]{}, false
	}
}

// Cancel ends the subscription.
func (s *Subscription[T]) Cancel() {
	s.unsub()
}

// Close stops broadcasting and ends all subscriptions. It returns after all
// subscription channels have been closed. The tree itself is unaffected and
// may still be edited.
func (e *Editor[T]) Close() {
	e.cast.Close()
	<-e.cast.Done()
}
