package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unifiedai/go-reportgen/pkg/binding"
	"github.com/unifiedai/go-reportgen/pkg/template"
)

func TestSubstitute_Policies(t *testing.T) {
	text := "# {TITLE}\n\n{BODY}\n"
	bindings := binding.Set{"TITLE": "Ocean Currents"}

	cases := []struct {
		name   string
		policy MissingPolicy
		want   string
	}{
		{"keep", MissingKeep, "# Ocean Currents\n\n{BODY}\n"},
		{"zero value defaults to keep", "", "# Ocean Currents\n\n{BODY}\n"},
		{"empty", MissingEmpty, "# Ocean Currents\n\n\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Substitute(text, bindings, tc.policy)
			if err != nil {
				t.Fatalf("substitute: %v", err)
			}
			if got != tc.want {
				t.Fatalf("output mismatch:\nwant %q\ngot  %q", tc.want, got)
			}
		})
	}
}

func TestSubstitute_MissingError(t *testing.T) {
	_, err := Substitute("{A} {B} {A} {C}", binding.Set{"B": "x"}, MissingError)
	if err == nil {
		t.Fatalf("expected error")
	}

	names, ok := Unbound(err)
	if !ok {
		t.Fatalf("expected *UnboundError, got %v", err)
	}
	if diff := cmp.Diff([]string{"A", "C"}, names); diff != "" {
		t.Fatalf("unbound names mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstitute_RepeatedToken(t *testing.T) {
	got, err := Substitute("{T}-{T}-{T}", binding.Set{"T": "x"}, MissingError)
	if err != nil {
		t.Fatalf("substitute: %v", err)
	}
	if got != "x-x-x" {
		t.Fatalf("repeat occurrences not all replaced: %q", got)
	}
}

func TestSubstitute_ValuesAreNotRescanned(t *testing.T) {
	got, err := Substitute("{A}", binding.Set{"A": "{B}", "B": "boom"}, MissingKeep)
	if err != nil {
		t.Fatalf("substitute: %v", err)
	}
	if got != "{B}" {
		t.Fatalf("bound value was rescanned: %q", got)
	}
}

func TestSubstitute_Identity(t *testing.T) {
	text := "# {TITLE}\n\n{SECTION_1_1}\nmixed {TITLE} again\n"
	bindings := binding.Set{}
	for _, name := range template.Names(text) {
		bindings[name] = "{" + name + "}"
	}

	got, err := Substitute(text, bindings, MissingError)
	if err != nil {
		t.Fatalf("substitute: %v", err)
	}
	if got != text {
		t.Fatalf("identity render altered the text:\nwant %q\ngot  %q", text, got)
	}
}

func TestSubstitute_Idempotent(t *testing.T) {
	text := "# {TITLE}\n\n{BODY}\n"
	bindings := binding.Set{"TITLE": "Tides", "BODY": "All about tides."}

	once, err := Substitute(text, bindings, MissingError)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	twice, err := Substitute(once, bindings, MissingError)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if once != twice {
		t.Fatalf("render is not idempotent:\nonce  %q\ntwice %q", once, twice)
	}
}

func TestSubstitute_MalformedBracesPassThrough(t *testing.T) {
	text := "{ {TITLE} } {title} {1X} {UNTERMINATED"
	for _, policy := range []MissingPolicy{MissingKeep, MissingEmpty, MissingError} {
		got, err := Substitute(text, binding.Set{"TITLE": "T"}, policy)
		if err != nil {
			t.Fatalf("policy %q: %v", policy, err)
		}
		if got != "{ T } {title} {1X} {UNTERMINATED" {
			t.Fatalf("policy %q mangled literal braces: %q", policy, got)
		}
	}
}

func TestSubstituteDocument_AttributesTemplate(t *testing.T) {
	doc := Document{
		Template: template.New("memo", "{TITLE}"),
		Bindings: binding.Set{},
	}

	_, err := SubstituteDocument(doc, MissingError)
	var unbound *UnboundError
	if !errors.As(err, &unbound) {
		t.Fatalf("expected *UnboundError, got %v", err)
	}
	if unbound.Template != "memo" {
		t.Fatalf("unexpected template attribution: %q", unbound.Template)
	}
}
