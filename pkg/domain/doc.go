// Package domain holds the data model of the screen automation engine:
// field and step configuration, the insertion-ordered input set, screen
// classifications and the append-only execution result.
//
// Everything here is plain data. Configuration types are read-only inputs
// to the engine; the only mutable value is the ExecutionResult, which grows
// by appending messages and is never rewritten.
package domain
