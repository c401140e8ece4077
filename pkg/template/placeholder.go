package template

// Placeholder is a single {NAME} occurrence inside a template body. Start and
// End are byte offsets into the body; End points one past the closing brace.
type Placeholder struct {
	Name  string
	Start int
	End   int
}

// Scan walks text left to right and returns every placeholder occurrence in
// document order. A placeholder is exactly `{NAME}` where NAME starts with an
// uppercase letter followed by uppercase letters, digits, or underscores.
// Anything else involving braces (unterminated, empty, lowercase, nested
// opening braces) is literal text and is skipped, never an error.
func Scan(text string) []Placeholder {
	var out []Placeholder

	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}

		j := i + 1
		if j >= len(text) || !isUpper(text[j]) {
			continue
		}
		j++
		for j < len(text) && isNameByte(text[j]) {
			j++
		}
		if j >= len(text) || text[j] != '}' {
			continue
		}

		out = append(out, Placeholder{
			Name:  text[i+1 : j],
			Start: i,
			End:   j + 1,
		})
		i = j
	}

	return out
}

// Names returns the distinct placeholder names in text, ordered by first
// appearance.
func Names(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, ph := range Scan(text) {
		if _, ok := seen[ph.Name]; ok {
			continue
		}
		seen[ph.Name] = struct{}{}
		out = append(out, ph.Name)
	}

	return out
}

// ValidName reports whether name is a well-formed placeholder name.
func ValidName(name string) bool {
	if name == "" || !isUpper(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return false
		}
	}
	return true
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isNameByte(b byte) bool {
	return isUpper(b) || b == '_' || (b >= '0' && b <= '9')
}
