// Package template defines renderer-agnostic template engine interfaces and
// adapters for output renderers that wrap the report body in a page layout.
package template
