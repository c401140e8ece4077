package render

import (
	"context"

	"github.com/unifiedai/go-reportgen/pkg/binding"
	"github.com/unifiedai/go-reportgen/pkg/template"
)

// Document is the unit of work handed to renderers: a resolved template plus
// the bindings to substitute and any document-level metadata.
type Document struct {
	Template template.Template
	Bindings binding.Set
	// Metadata carries document-level key/value pairs (title, date, template
	// name). Renderers decide how to surface it; the markdown renderer emits
	// it as YAML front matter when requested.
	Metadata map[string]string
}

// Renderer converts a Document into a byte representation (markdown, HTML,
// or an interactively completed document).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, options RenderOptions) ([]byte, error)
}
