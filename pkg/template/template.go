package template

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Template is an immutable named document. The body is plain markdown text
// carrying zero or more {NAME} placeholder tokens; it is never mutated after
// construction.
type Template struct {
	name string
	body string
}

// New constructs a template from in-memory content.
func New(name, body string) Template {
	return Template{name: strings.TrimSpace(name), body: body}
}

// FromFile reads a template from disk. The template name is the file base
// name without its extension.
func FromFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("template: read %s: %w", path, err)
	}
	return New(nameFromPath(path), string(data)), nil
}

// FromFS reads a template from the provided filesystem.
func FromFS(fsys fs.FS, path string) (Template, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Template{}, fmt.Errorf("template: read %s: %w", path, err)
	}
	return New(nameFromPath(path), string(data)), nil
}

// Name returns the template identifier.
func (t Template) Name() string { return t.name }

// Body returns the raw template text.
func (t Template) Body() string { return t.body }

// Placeholders returns every placeholder occurrence in document order.
func (t Template) Placeholders() []Placeholder { return Scan(t.body) }

// TokenNames returns the distinct placeholder names in first-appearance order.
func (t Template) TokenNames() []string { return Names(t.body) }

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
