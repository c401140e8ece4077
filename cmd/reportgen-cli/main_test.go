package main

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestThemeOptions_NoFlags(t *testing.T) {
	opts, err := themeOptions("", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != nil {
		t.Fatalf("expected no options, got %d", len(opts))
	}
}

func TestThemeOptions_ThemeWithoutManifestDir(t *testing.T) {
	_, err := themeOptions("", "professional", "dark")
	if err == nil {
		t.Fatalf("expected error for -theme without -themes")
	}
	if !strings.Contains(err.Error(), "-themes") {
		t.Fatalf("error should point at the -themes flag, got %v", err)
	}
}

func TestLoadThemes_SubdirectoryManifests(t *testing.T) {
	fsys := fstest.MapFS{
		"professional/theme.yaml": &fstest.MapFile{Data: []byte(`
name: professional
version: 1.0.0
tokens:
  report-accent: "#123456"
`)},
		"academic/theme.json": &fstest.MapFile{Data: []byte(`{
  "name": "academic",
  "version": "1.0.0",
  "tokens": {"report-accent": "#222222"}
}`)},
	}

	provider, err := loadThemes(fsys)
	if err != nil {
		t.Fatalf("load themes: %v", err)
	}

	for _, name := range []string{"professional", "academic"} {
		manifest, err := provider.Theme(name)
		if err != nil {
			t.Fatalf("theme %q not registered: %v", name, err)
		}
		if manifest.Tokens["report-accent"] == "" {
			t.Fatalf("theme %q lost its tokens", name)
		}
	}
}

func TestLoadThemes_NoManifests(t *testing.T) {
	if _, err := loadThemes(fstest.MapFS{"readme.txt": &fstest.MapFile{Data: []byte("x")}}); err == nil {
		t.Fatalf("expected error for directory without manifests")
	}
}
