package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/unifiedai/go-reportgen/pkg/binding"
	"github.com/unifiedai/go-reportgen/pkg/render"
	"github.com/unifiedai/go-reportgen/pkg/renderers/html"
	"github.com/unifiedai/go-reportgen/pkg/renderers/markdown"
	"github.com/unifiedai/go-reportgen/pkg/template"
)

const defaultRendererName = "markdown"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithCatalog supplies the template catalog used to resolve templates by
// name.
func WithCatalog(catalog *template.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = catalog
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithMissingPolicy sets the unbound-placeholder policy applied when a
// request does not choose one.
func WithMissingPolicy(policy render.MissingPolicy) Option {
	return func(o *Orchestrator) {
		o.missing = policy
	}
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.selector = selector
	}
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// registers it with the orchestrator so renderers receive resolved tokens,
// CSS variables, and assets. The defaults apply when a request names no theme.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		o.selector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   strings.TrimSpace(defaultTheme),
			DefaultVariant: strings.TrimSpace(defaultVariant),
		}
		o.defaultTheme = strings.TrimSpace(defaultTheme)
		o.defaultVariant = strings.TrimSpace(defaultVariant)
	}
}

// WithDefaultTheme selects the theme and variant applied when a request does
// not name one. It only takes effect when a theme selector is configured.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = strings.TrimSpace(name)
		o.defaultVariant = strings.TrimSpace(variant)
	}
}

// Orchestrator coordinates the full pipeline from template and bindings to
// rendered output. It applies sensible defaults (markdown renderer plus the
// HTML renderer in the registry) while remaining open to dependency injection
// for advanced callers.
type Orchestrator struct {
	catalog         *template.Catalog
	registry        *render.Registry
	defaultRenderer string
	missing         render.MissingPolicy
	selector        theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. A missing
// registry is initialised with the built-in renderers so callers can start
// with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.registry != nil {
		return
	}

	registry := render.NewRegistry()
	registry.MustRegister(markdown.New())

	htmlRenderer, err := html.New()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: initialise html renderer: %w", err)
		return
	}
	registry.MustRegister(htmlRenderer)

	o.registry = registry
}

// Request describes the inputs required to render a report document.
type Request struct {
	// Template names a catalog template to render. Ignored when Document is
	// supplied.
	Template string

	// Document allows callers to bypass the catalog when they already hold a
	// template.
	Document *template.Template

	// Bindings are explicit token values. They win over values loaded from
	// BindingFiles.
	Bindings binding.Set

	// BindingFiles lists YAML/JSON binding files merged in order before
	// Bindings.
	BindingFiles []string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Missing selects the unbound-placeholder policy for this request. Empty
	// falls back to the orchestrator default.
	Missing render.MissingPolicy

	// FrontMatter asks the renderer to emit document metadata ahead of the
	// body when it supports that.
	FrontMatter bool

	// Metadata is merged over the derived document metadata (template name,
	// title, date).
	Metadata map[string]string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured.
	ThemeName    string
	ThemeVariant string
}

// Generate executes the template resolution, binding merge, theme resolution,
// and render sequence, returning the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}

	tpl, err := o.resolveTemplate(req)
	if err != nil {
		return nil, err
	}

	bindings, err := o.mergeBindings(req)
	if err != nil {
		return nil, err
	}

	rendererName := strings.TrimSpace(req.Renderer)
	if rendererName == "" {
		rendererName = o.defaultRenderer
	}
	renderer, err := o.registry.Get(rendererName)
	if err != nil {
		return nil, err
	}

	themeConfig, err := o.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	missing := req.Missing
	if missing == "" {
		missing = o.missing
	}

	doc := render.Document{
		Template: tpl,
		Bindings: bindings,
		Metadata: documentMetadata(tpl, bindings, req.Metadata),
	}
	opts := render.RenderOptions{
		Missing:     missing,
		FrontMatter: req.FrontMatter,
		Theme:       themeConfig,
	}

	return renderer.Render(ctx, doc, opts)
}

func (o *Orchestrator) resolveTemplate(req Request) (template.Template, error) {
	if req.Document != nil {
		return *req.Document, nil
	}

	name := strings.TrimSpace(req.Template)
	if name == "" {
		return template.Template{}, errors.New("orchestrator: request needs a template name or document")
	}
	if o.catalog == nil {
		return template.Template{}, errors.New("orchestrator: no template catalog configured")
	}

	entry, ok := o.catalog.Get(name)
	if !ok {
		return template.Template{}, fmt.Errorf("orchestrator: unknown template %q (have %s)", name, strings.Join(o.catalog.Names(), ", "))
	}
	return entry.Template, nil
}

func (o *Orchestrator) mergeBindings(req Request) (binding.Set, error) {
	merged := binding.Set{}
	for _, file := range req.BindingFiles {
		loaded, err := binding.Load(file)
		if err != nil {
			return nil, err
		}
		merged = merged.Merge(loaded)
	}
	return merged.Merge(req.Bindings), nil
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	name := strings.TrimSpace(req.ThemeName)
	variant := strings.TrimSpace(req.ThemeVariant)
	if name == "" {
		name, variant = o.defaultTheme, o.defaultVariant
	}
	if o.selector == nil || name == "" {
		return nil, nil
	}

	selection, err := o.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}

	config := selection.RendererTheme(nil)
	return &config, nil
}

func documentMetadata(tpl template.Template, bindings binding.Set, overrides map[string]string) map[string]string {
	metadata := map[string]string{
		"template": tpl.Name(),
	}
	if title, ok := bindings["TITLE"]; ok && strings.TrimSpace(title) != "" {
		metadata["title"] = title
	}
	if date, ok := bindings["DATE"]; ok && strings.TrimSpace(date) != "" {
		metadata["date"] = date
	}
	for key, value := range overrides {
		metadata[key] = value
	}
	return metadata
}
