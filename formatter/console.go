package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/mtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // maximum width of an output line in “en”s; 0 means unlimited
	Context   *uax11.Context // context for measuring character widths; nil means Latin
	Inner     *color.Color   // color for labels of inner nodes; nil for the default palette
	Leaf      *color.Color   // color for labels of leaves; nil for the default palette
}

// Connectors drawn in front of labels. All of them are 4 “en”s wide.
const (
	connTee    = "├── "
	connCorner = "└── "
	connPipe   = "│   "
	connBlank  = "    "
	connWidth  = 4
)

// NoValue is the label displayed for nodes without a value.
const NoValue = "·"

// ellipsis is appended to truncated labels.
const ellipsis = "…"

var setupGraphemes sync.Once

// Print outputs a tree to stdout, labeling nodes with fmt.Sprint(value).
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print[T any](root *mtree.Node[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Fprint(os.Stdout, root, config)
}

// Fprint outputs a tree to w, labeling nodes with fmt.Sprint(value).
func Fprint[T any](w io.Writer, root *mtree.Node[T], config *Config) error {
	return FprintFunc(w, root, config, func(v T) string { return fmt.Sprint(v) })
}

// FprintFunc outputs a tree to w, labeling nodes with label(value).
// Nodes without a value are labeled with NoValue.
//
// Neither of the arguments may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
func FprintFunc[T any](w io.Writer, root *mtree.Node[T], config *Config, label func(T) string) error {
	if w == nil || root == nil || config == nil || label == nil {
		return fmt.Errorf("%w: nil argument", mtree.ErrIllegalArguments)
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	out := &outline[T]{
		w:       w,
		config:  config,
		label:   label,
		context: config.Context,
		inner:   config.Inner,
		leaf:    config.Leaf,
	}
	if out.context == nil {
		out.context = uax11.LatinContext
	}
	if out.inner == nil || out.leaf == nil {
		inner, leaf := makeDefaultPalette()
		if out.inner == nil {
			out.inner = inner
		}
		if out.leaf == nil {
			out.leaf = leaf
		}
	}
	out.node(root, "", "", 0)
	if out.err != nil {
		tracer().Errorf("tree output: %v", out.err)
	}
	return out.err
}

func makeDefaultPalette() (inner, leaf *color.Color) {
	return color.New(color.FgBlue, color.Bold), color.New(color.FgGreen)
}

type outline[T any] struct {
	w       io.Writer
	config  *Config
	label   func(T) string
	context *uax11.Context
	inner   *color.Color
	leaf    *color.Color
	err     error
}

// node prints a line for n and recurses into its children. conn is the
// connector for n itself, prefix is inherited from n's ancestors, and
// indent is the width of prefix+conn in “en”s.
func (out *outline[T]) node(n *mtree.Node[T], prefix, conn string, indent int) {
	if out.err != nil {
		return
	}
	text := NoValue
	if n.HasValue() {
		text = out.label(n.Value())
	}
	text = strings.ReplaceAll(text, "\n", " ")
	if out.config.LineWidth > 0 {
		text = truncate(text, out.config.LineWidth-indent, out.context)
	}
	if _, out.err = io.WriteString(out.w, prefix+conn); out.err != nil {
		return
	}
	c := out.inner
	if n.IsLeaf() {
		c = out.leaf
	}
	if _, out.err = c.Fprint(out.w, text); out.err != nil {
		return
	}
	if _, out.err = io.WriteString(out.w, "\n"); out.err != nil {
		return
	}
	childPrefix := prefix
	if conn == connTee {
		childPrefix += connPipe
	} else if conn == connCorner {
		childPrefix += connBlank
	}
	for _, ch := range n.Children() {
		chConn := connTee
		if ch.NextSibling() == nil {
			chConn = connCorner
		}
		out.node(ch, childPrefix, chConn, len([]rune(childPrefix))+connWidth)
	}
}

// width returns the number of fixed-width positions s occupies.
func width(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens s to fit into maxwidth “en”s, marking truncation with an
// ellipsis. If not even the ellipsis fits, truncate returns the empty string.
func truncate(s string, maxwidth int, context *uax11.Context) string {
	if maxwidth <= 0 {
		return ""
	}
	if width(s, context) <= maxwidth {
		return s
	}
	limit := maxwidth - width(ellipsis, context)
	if limit < 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range s {
		if width(b.String()+string(r), context) > limit {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + ellipsis
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
