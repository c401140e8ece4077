package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	reportgen "github.com/unifiedai/go-reportgen"
	"github.com/unifiedai/go-reportgen/pkg/binding"
	"github.com/unifiedai/go-reportgen/pkg/orchestrator"
	"github.com/unifiedai/go-reportgen/pkg/render"
	"github.com/unifiedai/go-reportgen/pkg/renderers/tui"
)

func main() {
	templateName := flag.String("template", "research_report", "template to render")
	rendererName := flag.String("renderer", "markdown", "renderer to use")
	bindingFile := flag.String("bindings", "", "YAML/JSON binding file")
	missing := flag.String("missing", "keep", "unbound placeholder policy: keep, empty, or error")
	themeName := flag.String("theme", "", "theme name for themed renderers")
	themeVariant := flag.String("theme-variant", "", "theme variant")
	themesDir := flag.String("themes", "", "directory holding theme manifests (theme.yaml per theme)")
	output := flag.String("output", "", "output file (stdout if empty)")
	frontMatter := flag.Bool("front-matter", false, "prepend document metadata as YAML front matter")
	interactive := flag.Bool("interactive", false, "prompt for unbound placeholders")
	list := flag.Bool("list", false, "list available templates and exit")

	var pairs setFlags
	flag.Var(&pairs, "set", "bind a token as NAME=value (repeatable)")
	flag.Parse()

	ctx := context.Background()

	if *list {
		listTemplates()
		return
	}

	policy, err := render.ParseMissingPolicy(*missing)
	if err != nil {
		log.Fatalf("Invalid -missing value: %v", err)
	}

	bindings, err := binding.FromPairs(pairs)
	if err != nil {
		log.Fatalf("Invalid -set flag: %v", err)
	}

	themeOpts, err := themeOptions(*themesDir, *themeName, *themeVariant)
	if err != nil {
		log.Fatalf("Invalid theme configuration: %v", err)
	}
	options := themeOpts

	renderer := strings.TrimSpace(*rendererName)
	if *interactive {
		interactiveRenderer, err := tui.New()
		if err != nil {
			log.Fatalf("Failed to set up interactive mode: %v", err)
		}
		registry := render.NewRegistry()
		registry.MustRegister(interactiveRenderer)
		options = append(options, reportgen.WithRegistry(registry))
		renderer = interactiveRenderer.Name()
	}

	gen, err := reportgen.NewOrchestrator(options...)
	if err != nil {
		log.Fatalf("Failed to initialise: %v", err)
	}

	req := orchestrator.Request{
		Template:     *templateName,
		Bindings:     bindings,
		Renderer:     renderer,
		Missing:      policy,
		FrontMatter:  *frontMatter,
		ThemeName:    *themeName,
		ThemeVariant: *themeVariant,
	}
	if trimmed := strings.TrimSpace(*bindingFile); trimmed != "" {
		req.BindingFiles = []string{trimmed}
	}

	document, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, document, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", *output)
	} else {
		fmt.Println(string(document))
	}
}

func listTemplates() {
	catalog, err := reportgen.DefaultCatalog()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	for _, name := range catalog.Names() {
		entry, _ := catalog.Get(name)
		fmt.Printf("%s\t%s\n", name, entry.Description)
	}
}

// themeOptions translates the theme flags into orchestrator options. Naming a
// theme without a manifest directory is an error rather than a silent
// fallback to the built-in styles.
func themeOptions(themesDir, themeName, themeVariant string) ([]orchestrator.Option, error) {
	themesDir = strings.TrimSpace(themesDir)
	themeName = strings.TrimSpace(themeName)

	if themesDir == "" {
		if themeName != "" {
			return nil, fmt.Errorf("-theme %q requires -themes pointing at a theme manifest directory", themeName)
		}
		return nil, nil
	}

	provider, err := loadThemes(os.DirFS(themesDir))
	if err != nil {
		return nil, err
	}
	return []orchestrator.Option{
		reportgen.WithThemeProvider(provider, themeName, themeVariant),
	}, nil
}

// loadThemes registers every theme manifest found in the root of fsys or in
// one of its immediate subdirectories.
func loadThemes(fsys fs.FS) (theme.ThemeProvider, error) {
	registry := theme.NewRegistry()

	if manifest, err := theme.LoadDir(fsys, "."); err == nil {
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("register theme %q: %w", manifest.Name, err)
		}
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read themes directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := theme.LoadDir(fsys, entry.Name())
		if err != nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("register theme %q: %w", manifest.Name, err)
		}
	}

	if len(registry.Themes()) == 0 {
		return nil, fmt.Errorf("no theme manifests found")
	}
	return registry, nil
}

// setFlags accumulates repeated -set NAME=value flags.
type setFlags []string

func (f *setFlags) String() string {
	return strings.Join(*f, ",")
}

func (f *setFlags) Set(value string) error {
	*f = append(*f, value)
	return nil
}
