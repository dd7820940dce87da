// Command treeview grows random trees and displays them.
//
// Usage:
//
//	treeview print --seed 7 --levels 3
//	treeview walk --order breadth
//	treeview dot | dot -Tsvg > tree.svg
//	treeview html > tree.html
//	treeview stats
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
