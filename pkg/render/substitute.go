package render

import (
	"strings"

	"github.com/unifiedai/go-reportgen/pkg/binding"
	"github.com/unifiedai/go-reportgen/pkg/template"
)

// Substitute scans text left to right and replaces every bound placeholder
// with its value. Bound values are emitted verbatim and never rescanned, so a
// single call is all that ever runs over the template: binding every name N
// to the literal "{N}" reproduces the input byte for byte, and a fully bound
// render is idempotent.
//
// Unbound placeholders follow policy; malformed brace sequences are not
// placeholders and pass through untouched under every policy. The returned
// error is non-nil only for MissingError, and is then an *UnboundError.
func Substitute(text string, bindings binding.Set, policy MissingPolicy) (string, error) {
	placeholders := template.Scan(text)
	if len(placeholders) == 0 {
		return text, nil
	}

	var (
		out     strings.Builder
		missing []string
		seen    map[string]struct{}
	)
	out.Grow(len(text))

	cursor := 0
	for _, ph := range placeholders {
		out.WriteString(text[cursor:ph.Start])
		cursor = ph.End

		if value, ok := bindings[ph.Name]; ok {
			out.WriteString(value)
			continue
		}

		switch policy {
		case MissingEmpty:
		case MissingError:
			if seen == nil {
				seen = make(map[string]struct{})
			}
			if _, dup := seen[ph.Name]; !dup {
				seen[ph.Name] = struct{}{}
				missing = append(missing, ph.Name)
			}
		default:
			out.WriteString(text[ph.Start:ph.End])
		}
	}
	out.WriteString(text[cursor:])

	if len(missing) > 0 {
		return "", &UnboundError{Names: missing}
	}
	return out.String(), nil
}

// SubstituteDocument applies Substitute to a document body, attributing any
// unbound error to the document's template name.
func SubstituteDocument(doc Document, policy MissingPolicy) (string, error) {
	body, err := Substitute(doc.Template.Body(), doc.Bindings, policy)
	if err != nil {
		if unbound, ok := err.(*UnboundError); ok {
			unbound.Template = doc.Template.Name()
		}
		return "", err
	}
	return body, nil
}
