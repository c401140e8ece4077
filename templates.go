// Package reportgen ships the three report document templates (research,
// technical, business) and the rendering pipeline that substitutes bound
// values for their {NAME} placeholder tokens.
package reportgen

import (
	"embed"
	"io/fs"

	"github.com/unifiedai/go-reportgen/pkg/template"
)

//go:embed templates/*.md templates/manifest.yaml
var embeddedTemplates embed.FS

// EmbeddedTemplates exposes the built-in report templates so callers can
// reuse or extend them without going through the catalog.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// DefaultCatalog loads the embedded template catalog: research_report,
// technical_report, and business_report.
func DefaultCatalog() (*template.Catalog, error) {
	return template.LoadCatalog(EmbeddedTemplates())
}
