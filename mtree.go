package mtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

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

// TreeError is an error type for the mtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrStructuralViolation is flagged whenever a mutation would give a node a
// second parent or create a cycle.
const ErrStructuralViolation = TreeError("structural violation")

// ErrIndexOutOfRange is flagged whenever a child index is outside the bounds
// of a node's children.
const ErrIndexOutOfRange = TreeError("index out of range")

// ErrInvalidRelationship is flagged if a node is expected to be an ancestor
// of another node, but isn't.
const ErrInvalidRelationship = TreeError("invalid relationship")

// ErrNotAChild is flagged if a node is expected to be a direct child of
// another node, but isn't.
const ErrNotAChild = TreeError("not a child")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
