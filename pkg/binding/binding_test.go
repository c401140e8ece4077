package binding

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestFromPairs(t *testing.T) {
	set, err := FromPairs([]string{"TITLE=Ocean Currents", "DATE=2026-08-30", "TITLE=Tides"})
	if err != nil {
		t.Fatalf("from pairs: %v", err)
	}

	want := Set{"TITLE": "Tides", "DATE": "2026-08-30"}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Fatalf("set mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPairs_Rejects(t *testing.T) {
	if _, err := FromPairs([]string{"TITLE"}); err == nil {
		t.Fatalf("expected error for missing =")
	}
	if _, err := FromPairs([]string{"title=x"}); err == nil {
		t.Fatalf("expected error for lowercase name")
	}
}

func TestMerge_DoesNotMutate(t *testing.T) {
	base := Set{"TITLE": "a", "DATE": "b"}
	overlay := Set{"DATE": "c", "TOPIC": "d"}

	merged := base.Merge(overlay)

	if diff := cmp.Diff(Set{"TITLE": "a", "DATE": "c", "TOPIC": "d"}, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	if base["DATE"] != "b" {
		t.Fatalf("merge mutated the receiver")
	}
}

func TestUnused(t *testing.T) {
	set := Set{"TITLE": "a", "TONE": "b", "AUTHOR": "c"}
	got := set.Unused([]string{"TITLE", "DATE"})
	if diff := cmp.Diff([]string{"AUTHOR", "TONE"}, got); diff != "" {
		t.Fatalf("unused mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"bindings.yaml": &fstest.MapFile{Data: []byte(
			"TITLE: Ocean Currents\nDATE: 2026-08-30\nSECTION_1_1: |\n  Multi-line\n  content.\nWORD_COUNT: 1200\n",
		)},
	}

	set, err := LoadFS(fsys, "bindings.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Set{
		"TITLE":       "Ocean Currents",
		"DATE":        "2026-08-30",
		"SECTION_1_1": "Multi-line\ncontent.\n",
		"WORD_COUNT":  "1200",
	}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Fatalf("set mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_JSON(t *testing.T) {
	fsys := fstest.MapFS{
		"bindings.json": &fstest.MapFile{Data: []byte(`{"TITLE": "Tides", "EMPTY": null}`)},
	}

	set, err := LoadFS(fsys, "bindings.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Set{"TITLE": "Tides", "EMPTY": ""}, set); diff != "" {
		t.Fatalf("set mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid key", "title: x\n", "not a valid placeholder name"},
		{"non-scalar value", "TITLE:\n  nested: x\n", "not a scalar"},
		{"empty file", "   \n", "is empty"},
		{"garbage", "{not yaml: [", "invalid JSON or YAML"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"bindings.yaml": &fstest.MapFile{Data: []byte(tc.data)},
			}
			_, err := LoadFS(fsys, "bindings.yaml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
