package binding

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unifiedai/go-reportgen/pkg/template"
)

// Load reads a binding file from disk. JSON and YAML documents are accepted;
// the top level must be a mapping from placeholder names to scalar values.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("binding: read %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadFS reads a binding file from the provided filesystem.
func LoadFS(fsys fs.FS, path string) (Set, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("binding: read %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (Set, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("binding: file %s is empty", source)
	}

	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = map[string]any{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("binding: parse %s: invalid JSON or YAML", source)
		}
	}

	out := make(Set, len(raw))
	for name, value := range raw {
		trimmed := strings.TrimSpace(name)
		if !template.ValidName(trimmed) {
			return nil, fmt.Errorf("binding: file %s key %q is not a valid placeholder name", source, name)
		}

		text, err := scalarText(value)
		if err != nil {
			return nil, fmt.Errorf("binding: file %s key %q: %w", source, name, err)
		}
		out[trimmed] = text
	}
	return out, nil
}

// scalarText renders a decoded scalar as the replacement string. Mappings and
// sequences have no textual form and are rejected.
func scalarText(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool, int, int64, float64:
		return fmt.Sprint(v), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("value of type %T is not a scalar", value)
	}
}
