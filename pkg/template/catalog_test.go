package template

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func catalogFS(manifest string) fstest.MapFS {
	return fstest.MapFS{
		"manifest.yaml": &fstest.MapFile{Data: []byte(manifest)},
		"memo.md":       &fstest.MapFile{Data: []byte("# {TITLE}\n\n{BODY}\n")},
	}
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog(catalogFS(`
templates:
  memo:
    file: memo.md
    title: Memo
    description: Short memo.
    tokens: [TITLE, BODY]
`))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	if diff := cmp.Diff([]string{"memo"}, catalog.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	entry, ok := catalog.Get("memo")
	if !ok {
		t.Fatalf("expected memo entry")
	}
	if entry.Template.Name() != "memo" {
		t.Fatalf("entry template name: %q", entry.Template.Name())
	}
	if entry.Title != "Memo" || entry.Description != "Short memo." {
		t.Fatalf("unexpected entry metadata: %+v", entry)
	}
	if diff := cmp.Diff([]string{"TITLE", "BODY"}, entry.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCatalog_NilFS(t *testing.T) {
	catalog, err := LoadCatalog(nil)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if !catalog.Empty() {
		t.Fatalf("expected empty catalog")
	}
}

func TestLoadCatalog_TokenSetMismatch(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name: "missing declaration",
			manifest: `
templates:
  memo:
    file: memo.md
    tokens: [TITLE]
`,
			wantErr: "missing declarations",
		},
		{
			name: "extra declaration",
			manifest: `
templates:
  memo:
    file: memo.md
    tokens: [TITLE, BODY, FOOTER]
`,
			wantErr: "absent from the file",
		},
		{
			name: "invalid token name",
			manifest: `
templates:
  memo:
    file: memo.md
    tokens: [TITLE, body]
`,
			wantErr: "not a valid placeholder name",
		},
		{
			name: "missing file",
			manifest: `
templates:
  memo:
    file: nope.md
    tokens: [TITLE, BODY]
`,
			wantErr: "read nope.md",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCatalog(catalogFS(tc.manifest))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCatalog_DuplicateAcrossManifests(t *testing.T) {
	fsys := fstest.MapFS{
		"a/manifest.yaml": &fstest.MapFile{Data: []byte("templates:\n  memo:\n    file: memo.md\n    tokens: [TITLE]\n")},
		"a/memo.md":       &fstest.MapFile{Data: []byte("{TITLE}")},
		"b/manifest.yaml": &fstest.MapFile{Data: []byte("templates:\n  memo:\n    file: memo.md\n    tokens: [TITLE]\n")},
		"b/memo.md":       &fstest.MapFile{Data: []byte("{TITLE}")},
	}

	_, err := LoadCatalog(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate template") {
		t.Fatalf("expected duplicate template error, got %v", err)
	}
}

func TestTemplate_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/memo.md": &fstest.MapFile{Data: []byte("# {TITLE}\n")},
	}

	tpl, err := FromFS(fsys, "docs/memo.md")
	if err != nil {
		t.Fatalf("from fs: %v", err)
	}
	if tpl.Name() != "memo" {
		t.Fatalf("template name: %q", tpl.Name())
	}
	if diff := cmp.Diff([]string{"TITLE"}, tpl.TokenNames()); diff != "" {
		t.Fatalf("token names mismatch (-want +got):\n%s", diff)
	}
}
