package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// MissingPolicy decides what happens when a template references a name the
// bindings do not supply. The templates themselves give no evidence of an
// intended policy, so it is explicit per render call.
type MissingPolicy string

const (
	// MissingKeep leaves the placeholder literal in the output. Default.
	MissingKeep MissingPolicy = "keep"
	// MissingEmpty replaces unbound placeholders with the empty string.
	MissingEmpty MissingPolicy = "empty"
	// MissingError fails the render with an *UnboundError naming every
	// unresolved token.
	MissingError MissingPolicy = "error"
)

// ParseMissingPolicy maps the CLI spelling of a policy to its value. An empty
// string selects the default keep policy.
func ParseMissingPolicy(raw string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(MissingKeep):
		return MissingKeep, nil
	case string(MissingEmpty):
		return MissingEmpty, nil
	case string(MissingError):
		return MissingError, nil
	default:
		return "", fmt.Errorf("render: unknown missing policy %q (want keep, empty, or error)", raw)
	}
}

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the document pipeline.
type RenderOptions struct {
	// Missing selects the unbound-placeholder policy. The zero value renders
	// as MissingKeep.
	Missing MissingPolicy
	// FrontMatter asks renderers that support it to emit Document.Metadata as
	// a YAML front matter block ahead of the body.
	FrontMatter bool
	// Theme carries the resolved theme configuration for renderers that style
	// their output (the HTML renderer maps theme tokens to CSS custom
	// properties). Nil means unthemed output.
	Theme *theme.RendererConfig
}

// EffectiveMissing normalises the zero value to the default policy.
func (o RenderOptions) EffectiveMissing() MissingPolicy {
	if o.Missing == "" {
		return MissingKeep
	}
	return o.Missing
}
