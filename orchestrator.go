package reportgen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/unifiedai/go-reportgen/pkg/binding"
	"github.com/unifiedai/go-reportgen/pkg/orchestrator"
	"github.com/unifiedai/go-reportgen/pkg/render"
)

// Request aliases the orchestrator request so callers can drive the pipeline
// from the root package.
type Request = orchestrator.Request

// RenderOptions describes per-render behavior such as the unbound-placeholder
// policy and front matter emission.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module. When no catalog option is supplied, the embedded template catalog
// is used.
func NewOrchestrator(options ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	merged := append([]orchestrator.Option{orchestrator.WithCatalog(catalog)}, options...)
	return orchestrator.New(merged...), nil
}

// Generate renders a named embedded template with the supplied bindings using
// the default markdown renderer. It is the simplest entry point for callers
// that just want the substituted document.
func Generate(ctx context.Context, templateName string, bindings binding.Set, options ...orchestrator.Option) ([]byte, error) {
	gen, err := NewOrchestrator(options...)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, orchestrator.Request{
		Template: templateName,
		Bindings: bindings,
	})
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) orchestrator.Option {
	return orchestrator.WithRegistry(registry)
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) orchestrator.Option {
	return orchestrator.WithDefaultRenderer(name)
}

// WithMissingPolicy sets the default policy for unbound placeholders.
func WithMissingPolicy(policy render.MissingPolicy) orchestrator.Option {
	return orchestrator.WithMissingPolicy(policy)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// registers it with the orchestrator so renderers receive resolved tokens,
// CSS variables, and assets.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}

// WithDefaultTheme selects the theme applied when requests name none.
func WithDefaultTheme(name, variant string) orchestrator.Option {
	return orchestrator.WithDefaultTheme(name, variant)
}
