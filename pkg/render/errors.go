package render

import (
	"errors"
	"fmt"
	"strings"
)

// UnboundError reports the placeholders a render could not resolve under the
// MissingError policy. Names are distinct and ordered by first appearance in
// the template.
type UnboundError struct {
	Template string
	Names    []string
}

func (e *UnboundError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("render: template %q has unbound placeholder {%s}", e.Template, e.Names[0])
	}
	return fmt.Sprintf("render: template %q has %d unbound placeholders: %s", e.Template, len(e.Names), strings.Join(e.Names, ", "))
}

// Unbound extracts the unresolved names from err when it carries an
// *UnboundError, directly or wrapped.
func Unbound(err error) ([]string, bool) {
	var unbound *UnboundError
	if !errors.As(err, &unbound) {
		return nil, false
	}
	return unbound.Names, true
}
