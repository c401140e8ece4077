package template

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog holds the templates declared by one or more manifest files. Entries
// are keyed by template name.
type Catalog struct {
	entries map[string]Entry
}

// Entry pairs a loaded template with its manifest declaration.
type Entry struct {
	Template    Template
	Title       string
	Description string
	// Tokens is the closed token set the manifest declares for the template.
	// Load verifies it matches the tokens actually present in the file.
	Tokens []string
	// Source records the manifest file the entry came from.
	Source string
}

// LoadCatalog walks fsys for manifest files (manifest.yaml/.yml/.json) and
// loads every declared template. Loading fails on duplicate template names,
// unreadable template files, or a declared token set that disagrees with the
// tokens scanned from the template body.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	catalog := &Catalog{entries: make(map[string]Entry)}
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("template: read manifest %s: %w", p, err)
		}

		doc, err := parseManifest(data, p)
		if err != nil {
			return err
		}

		for name, decl := range doc.Templates {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("template: manifest %s declares an empty template name", p)
			}
			if _, exists := catalog.entries[id]; exists {
				return fmt.Errorf("template: duplicate template %q (manifest %s)", id, p)
			}

			loaded, err := loadEntry(fsys, p, id, decl)
			if err != nil {
				return err
			}
			catalog.entries[id] = loaded
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

// Get returns the entry for the supplied template name.
func (c *Catalog) Get(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[name]
	return e, ok
}

// Names returns the sorted template names held by the catalog.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the catalog holds any templates.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.entries) == 0
}

type manifestFile struct {
	Templates map[string]templateDecl `json:"templates" yaml:"templates"`
}

type templateDecl struct {
	File        string   `json:"file" yaml:"file"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tokens      []string `json:"tokens" yaml:"tokens"`
}

func parseManifest(data []byte, source string) (manifestFile, error) {
	var doc manifestFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return manifestFile{}, fmt.Errorf("template: manifest %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return manifestFile{}, fmt.Errorf("template: parse manifest %s: invalid JSON or YAML", source)
}

func loadEntry(fsys fs.FS, manifestPath, id string, decl templateDecl) (Entry, error) {
	file := strings.TrimSpace(decl.File)
	if file == "" {
		return Entry{}, fmt.Errorf("template: %q (manifest %s) has no file", id, manifestPath)
	}

	tpl, err := FromFS(fsys, path.Join(path.Dir(manifestPath), file))
	if err != nil {
		return Entry{}, err
	}
	tpl.name = id

	declared := make([]string, 0, len(decl.Tokens))
	for idx, token := range decl.Tokens {
		trimmed := strings.TrimSpace(token)
		if !ValidName(trimmed) {
			return Entry{}, fmt.Errorf("template: %q (manifest %s) token %d (%q) is not a valid placeholder name", id, manifestPath, idx, token)
		}
		declared = append(declared, trimmed)
	}

	if err := verifyTokens(id, manifestPath, declared, tpl.TokenNames()); err != nil {
		return Entry{}, err
	}

	return Entry{
		Template:    tpl,
		Title:       strings.TrimSpace(decl.Title),
		Description: strings.TrimSpace(decl.Description),
		Tokens:      declared,
		Source:      manifestPath,
	}, nil
}

// verifyTokens enforces that the manifest token set exactly equals the token
// set scanned from the template body: no extras, none missing.
func verifyTokens(id, manifestPath string, declared, scanned []string) error {
	declaredSet := toSet(declared)
	scannedSet := toSet(scanned)

	var missing, extra []string
	for name := range scannedSet {
		if _, ok := declaredSet[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range declaredSet {
		if _, ok := scannedSet[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)

	if len(missing) > 0 {
		return fmt.Errorf("template: %q (manifest %s) is missing declarations for tokens %s", id, manifestPath, strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		return fmt.Errorf("template: %q (manifest %s) declares tokens absent from the file: %s", id, manifestPath, strings.Join(extra, ", "))
	}
	return nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func isManifestFile(p string) bool {
	base := strings.ToLower(path.Base(p))
	switch base {
	case "manifest.yaml", "manifest.yml", "manifest.json":
		return true
	default:
		return false
	}
}
