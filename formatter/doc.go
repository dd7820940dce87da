/*
Package formatter prints trees on output devices with fixed-width fonts.

Trees are shown as an outline, one node per line, with box-drawing
connectors indicating the parent/child structure:

	0
	├── 10
	└── 20
	    ├── 21
	    └── 22

Inner nodes and leaves are displayed in different colors if the output
device supports it. Labels which do not fit into the configured line width
are truncated. Widths are measured in fixed-width positions (“en”s),
following the rules of UAX#29 (graphemes) and UAX#11 (character width), so
that east asian wide characters are accounted for correctly.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package formatter

import (
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
