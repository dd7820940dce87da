package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/mtree"
	"github.com/npillmayer/mtree/formatter"
	"github.com/npillmayer/mtree/html"
	"github.com/npillmayer/mtree/internal/randtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "treeview",
		Short: "Grow random trees and display them",
		Long: `treeview grows a random tree of integers from a seed and displays it
as an outline, as a sequence of values in a given traversal order,
as Graphviz DOT or as an HTML list.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupTracing,
	}
	printCmd = &cobra.Command{
		Use:   "print",
		Short: "Print the tree as an outline",
		Args:  cobra.NoArgs,
		RunE:  runPrint,
	}
	walkCmd = &cobra.Command{
		Use:   "walk",
		Short: "Print node values in traversal order",
		Args:  cobra.NoArgs,
		RunE:  runWalk,
	}
	dotCmd = &cobra.Command{
		Use:   "dot",
		Short: "Print the tree in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE:  runDot,
	}
	htmlCmd = &cobra.Command{
		Use:   "html",
		Short: "Print the tree as a nested HTML list",
		Args:  cobra.NoArgs,
		RunE:  runHTML,
	}
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print size, depth and leaf count of the tree",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	seed       uint64
	levels     int
	traceLevel string
	order      string
	width      int
)

func init() {
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 123, "Seed for the random tree")
	rootCmd.PersistentFlags().IntVar(&levels, "levels", 3, "Maximum number of levels below the root's children")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error", "Trace level (debug, info, error)")
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().IntVarP(&width, "width", "w", 0, "Line width; 0 means the terminal's width")
	rootCmd.AddCommand(walkCmd)
	walkCmd.Flags().StringVarP(&order, "order", "o", "pre", "Traversal order (pre, post, depth, breadth)")
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(statsCmd)
}

func setupTracing(cmd *cobra.Command, args []string) error {
	switch strings.ToLower(traceLevel) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("unknown trace level %q", traceLevel)
	}
	return nil
}

func growTree() *mtree.Node[int] {
	tree := randtree.Seeded(levels, seed)
	gtrace.CoreTracer.Infof("grew tree of %d nodes from seed %d", tree.Size(), seed)
	return tree
}

func runPrint(cmd *cobra.Command, args []string) error {
	config := formatter.ConfigFromTerminal()
	config.Context = uax11.ContextFromEnvironment()
	if width > 0 {
		config.LineWidth = width
	}
	return formatter.Fprint(cmd.OutOrStdout(), growTree(), config)
}

func runWalk(cmd *cobra.Command, args []string) error {
	o, err := mtree.ParseOrder(order)
	if err != nil {
		return err
	}
	var values []string
	for node := range growTree().Traverse(o).Range() {
		values = append(values, strconv.Itoa(node.Value()))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(values, " "))
	return err
}

func runDot(cmd *cobra.Command, args []string) error {
	return mtree.Tree2Dot(growTree(), cmd.OutOrStdout())
}

func runHTML(cmd *cobra.Command, args []string) error {
	if err := html.Render(cmd.OutOrStdout(), growTree(), strconv.Itoa); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout())
	return err
}

func runStats(cmd *cobra.Command, args []string) error {
	tree := growTree()
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "nodes=%d depth=%d leaves=%d\n",
		tree.Size(), tree.Depth(), tree.LeafCount())
	return err
}
