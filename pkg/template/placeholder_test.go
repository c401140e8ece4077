package template

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan_Grammar(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"single", "# {TITLE}", []string{"TITLE"}},
		{"digits and underscores", "{SECTION_1_1} {SECTION_2}", []string{"SECTION_1_1", "SECTION_2"}},
		{"repeat occurrences", "{TITLE} and {TITLE} again", []string{"TITLE", "TITLE"}},
		{"lowercase is literal", "{title}", nil},
		{"leading digit is literal", "{1TITLE}", nil},
		{"unterminated is literal", "{TITLE", nil},
		{"empty braces are literal", "{}", nil},
		{"space breaks the name", "{TITLE X}", nil},
		{"double braces keep inner", "{{TITLE}}", []string{"TITLE"}},
		{"adjacent", "{A}{B}", []string{"A", "B"}},
		{"none", "plain text", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, ph := range Scan(tc.text) {
				got = append(got, ph.Name)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("scan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScan_Offsets(t *testing.T) {
	text := "a {TITLE} b"
	placeholders := Scan(text)
	if len(placeholders) != 1 {
		t.Fatalf("expected one placeholder, got %d", len(placeholders))
	}

	ph := placeholders[0]
	if text[ph.Start:ph.End] != "{TITLE}" {
		t.Fatalf("offsets do not cover the token: %q", text[ph.Start:ph.End])
	}
}

func TestNames_FirstAppearanceOrder(t *testing.T) {
	got := Names("{B} {A} {B} {C} {A}")
	if diff := cmp.Diff([]string{"B", "A", "C"}, got); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"TITLE", "SECTION_1_1", "A", "X9"}
	for _, name := range valid {
		if !ValidName(name) {
			t.Fatalf("expected %q to be valid", name)
		}
	}

	invalid := []string{"", "title", "1X", "_X", "A B", "A-B"}
	for _, name := range invalid {
		if ValidName(name) {
			t.Fatalf("expected %q to be invalid", name)
		}
	}
}
