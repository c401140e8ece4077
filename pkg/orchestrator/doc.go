// Package orchestrator wires the template catalog, binding sources, theme
// resolution, and renderer registry into a single entry point, providing
// dependency injection friendly helpers for consumers that prefer one
// constructor call.
package orchestrator
