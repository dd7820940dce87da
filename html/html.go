/*
Package html converts trees to and from nested HTML lists.

A tree is represented as an unordered list with a single item for the root.
Every item carries the label of a node as its text, followed by a nested list
for the node's children, if any:

	<ul><li>0<ul><li>10</li><li>20<ul><li>21</li></ul></li></ul></li></ul>

This is meant for displaying trees (e.g., genomes of a population) in a
browser and for exchanging them with tools which understand HTML outlines.
It is not a storage format; node values are reduced to their labels.
*/
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/mtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ToHTML creates an HTML <ul> element for a tree. Nodes are labeled with
// label(value); nodes without a value get an empty label.
func ToHTML[T any](root *mtree.Node[T], label func(T) string) (*html.Node, error) {
	if root == nil || label == nil {
		return nil, mtree.ErrIllegalArguments
	}
	ul := element(atom.Ul)
	ul.AppendChild(listItem(root, label))
	return ul, nil
}

func listItem[T any](n *mtree.Node[T], label func(T) string) *html.Node {
	li := element(atom.Li)
	if n.HasValue() {
		li.AppendChild(&html.Node{Type: html.TextNode, Data: label(n.Value())})
	}
	if n.IsLeaf() {
		return li
	}
	ul := element(atom.Ul)
	for _, ch := range n.Children() {
		ul.AppendChild(listItem(ch, label))
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// Render writes a tree as an HTML list to w.
func Render[T any](w io.Writer, root *mtree.Node[T], label func(T) string) error {
	ul, err := ToHTML(root, label)
	if err != nil {
		return err
	}
	return html.Render(w, ul)
}

// FromHTML reads an HTML fragment containing nested lists and creates a tree
// for every top-level list item. Node values are the trimmed texts of the
// items, excluding the texts of nested items. Items with empty text become
// nodes without a value. Elements other than lists and list items are
// searched for nested lists, but have no node representation themselves.
func FromHTML(input io.Reader) ([]*mtree.Node[string], error) {
	context := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(input, context)
	if err != nil {
		return nil, err
	}
	var roots []*mtree.Node[string]
	for _, n := range nodes {
		roots = append(roots, collectItems(n)...)
	}
	if len(roots) == 0 {
		return nil, mtree.ErrIllegalArguments
	}
	T().Debugf("html: read %d trees from fragment", len(roots))
	return roots, nil
}

// collectItems returns trees for the outermost <li> elements at or below n.
func collectItems(n *html.Node) []*mtree.Node[string] {
	if n.Type == html.ElementNode && n.DataAtom == atom.Li {
		return []*mtree.Node[string]{fromItem(n)}
	}
	var items []*mtree.Node[string]
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		items = append(items, collectItems(c)...)
	}
	return items
}

func fromItem(li *html.Node) *mtree.Node[string] {
	var text strings.Builder
	var children []*mtree.Node[string]
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, &text, &children)
	}
	node := mtree.Empty[string]()
	if label := strings.TrimSpace(text.String()); label != "" {
		node.SetValue(label)
	}
	for _, ch := range children {
		err := node.Add(ch)
		assert(err == nil, "fromItem: fresh child cannot be attached")
	}
	return node
}

// collectText gathers the text of a list item, stopping at nested items,
// which become children.
func collectText(n *html.Node, text *strings.Builder, children *[]*mtree.Node[string]) {
	switch {
	case n.Type == html.TextNode:
		text.WriteString(n.Data)
	case n.Type == html.ElementNode && n.DataAtom == atom.Li:
		*children = append(*children, fromItem(n))
	case n.Type == html.ElementNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectText(c, text, children)
		}
	}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(errors.New(msg))
	}
}
