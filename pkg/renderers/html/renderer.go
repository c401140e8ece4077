// Package html renders report documents as standalone HTML pages. The
// substituted markdown body is converted with goldmark, sanitized with
// bluemonday, and wrapped in an embedded page layout. Theme tokens resolved
// by the orchestrator surface as CSS custom properties on the page root.
package html

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/unifiedai/go-reportgen/pkg/render"
	"github.com/unifiedai/go-reportgen/pkg/render/template"
	"github.com/unifiedai/go-reportgen/pkg/render/template/gotemplate"
)

const defaultLayout = "layout/page.html"

// Option configures the HTML renderer.
type Option func(*Renderer)

// WithEngine injects a custom layout template engine.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// WithLayout selects a layout template name rendered by the engine.
func WithLayout(name string) Option {
	return func(r *Renderer) {
		trimmed := strings.TrimSpace(name)
		if trimmed != "" {
			r.layout = trimmed
		}
	}
}

// WithPolicy overrides the sanitization policy applied to the document body.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// Renderer implements render.Renderer for HTML page output.
type Renderer struct {
	engine   template.TemplateRenderer
	policy   *bluemonday.Policy
	markdown goldmark.Markdown
	layout   string
}

// New constructs an HTML renderer with defaults: the embedded page layout,
// a GFM-capable goldmark converter, and the bluemonday UGC policy.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		policy: bluemonday.UGCPolicy(),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		layout: defaultLayout,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.engine == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(embeddedLayouts),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html: construct layout engine: %w", err)
		}
		r.engine = engine
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render substitutes bindings, converts the body to HTML, sanitizes it, and
// wraps it in the configured layout.
func (r *Renderer) Render(ctx context.Context, doc render.Document, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := render.SubstituteDocument(doc, opts.EffectiveMissing())
	if err != nil {
		return nil, err
	}

	var converted bytes.Buffer
	if err := r.markdown.Convert([]byte(body), &converted); err != nil {
		return nil, fmt.Errorf("html: convert markdown: %w", err)
	}

	data := map[string]any{
		"title":    pageTitle(doc),
		"body":     r.policy.Sanitize(converted.String()),
		"css_vars": cssVarsStyle(opts.Theme),
		"theme":    themeName(opts.Theme),
		"variant":  themeVariant(opts.Theme),
	}

	page, err := r.engine.RenderTemplate(r.layout, data)
	if err != nil {
		return nil, fmt.Errorf("html: render layout: %w", err)
	}
	return []byte(page), nil
}

func pageTitle(doc render.Document) string {
	if title, ok := doc.Metadata["title"]; ok && strings.TrimSpace(title) != "" {
		return title
	}
	if title, ok := doc.Bindings["TITLE"]; ok && strings.TrimSpace(title) != "" {
		return title
	}
	return doc.Template.Name()
}

// cssVarsStyle flattens theme CSS variables into a deterministic declaration
// list for the page's :root rule.
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&out, "%s: %s; ", key, cfg.CSSVars[key])
	}
	return strings.TrimSpace(out.String())
}

func themeName(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.Theme
}

func themeVariant(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.Variant
}
