// Package binding supplies the values substituted into report templates.
// Bindings are external to the templates themselves: callers assemble a Set
// from files, flags, or prompts and hand it to a renderer.
package binding

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unifiedai/go-reportgen/pkg/template"
)

// Set maps placeholder names to replacement text.
type Set map[string]string

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for name, value := range s {
		out[name] = value
	}
	return out
}

// Merge overlays other on top of s and returns the result. Neither input is
// mutated; keys in other win on conflict.
func (s Set) Merge(other Set) Set {
	out := make(Set, len(s)+len(other))
	for name, value := range s {
		out[name] = value
	}
	for name, value := range other {
		out[name] = value
	}
	return out
}

// Names returns the sorted binding keys.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unused returns the sorted binding keys that do not appear in tokens. Unused
// keys are harmless during rendering; callers can surface them as warnings.
func (s Set) Unused(tokens []string) []string {
	referenced := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		referenced[token] = struct{}{}
	}

	var out []string
	for name := range s {
		if _, ok := referenced[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// FromPairs builds a set from NAME=value pairs, the form accepted by the CLI
// -set flag. Later pairs win on duplicate names.
func FromPairs(pairs []string) (Set, error) {
	out := make(Set, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("binding: %q is not NAME=value", pair)
		}
		name = strings.TrimSpace(name)
		if !template.ValidName(name) {
			return nil, fmt.Errorf("binding: %q is not a valid placeholder name", name)
		}
		out[name] = value
	}
	return out, nil
}
