// Package markdown renders report documents to markdown, the format the
// templates are authored in. It is the default renderer.
package markdown

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unifiedai/go-reportgen/pkg/render"
)

// Renderer substitutes bindings into the template body and optionally
// prepends document metadata as a YAML front matter block.
type Renderer struct{}

// New constructs a markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "markdown"
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Render produces the substituted document. Ordering and surrounding markdown
// formatting of the template are preserved verbatim; only placeholders are
// replaced.
func (r *Renderer) Render(ctx context.Context, doc render.Document, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("markdown: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := render.SubstituteDocument(doc, opts.EffectiveMissing())
	if err != nil {
		return nil, err
	}

	if !opts.FrontMatter || len(doc.Metadata) == 0 {
		return []byte(body), nil
	}

	front, err := frontMatter(doc.Metadata)
	if err != nil {
		return nil, err
	}
	return []byte(front + body), nil
}

// frontMatter serialises metadata as a YAML block delimited by "---" lines.
// yaml.Marshal emits map keys sorted, so output is deterministic.
func frontMatter(metadata map[string]string) (string, error) {
	encoded, err := yaml.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("markdown: encode front matter: %w", err)
	}

	var out strings.Builder
	out.WriteString("---\n")
	out.Write(encoded)
	out.WriteString("---\n\n")
	return out.String(), nil
}
