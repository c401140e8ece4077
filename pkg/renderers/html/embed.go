package html

import (
	"embed"
	"io/fs"
)

//go:embed layout/*.tpl
var embeddedLayouts embed.FS

// LayoutsFS exposes the embedded page layouts so callers can reuse or extend
// them with their own template engine configuration.
func LayoutsFS() fs.FS {
	return embeddedLayouts
}
