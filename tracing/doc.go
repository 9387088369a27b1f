// Package tracing is a thin OpenTelemetry wrapper for the bulk automaton
// operations.  It is kept in its own package so that applications which do
// not want instrumentation never initialise a tracer provider; spans
// started before Init are no-ops.
package tracing
