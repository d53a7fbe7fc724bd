package author

import "strings"

// CleanLaTeX removes LaTeX markup unwanted in plain-text output: grouping
// braces, escaped spaces, and non-breaking tildes. Accent commands are left
// alone, so an escaped umlaut survives intact.
func CleanLaTeX(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '~':
			if i > 0 && s[i-1] == '\\' {
				b.WriteByte('~')
			} else {
				b.WriteByte(' ')
			}
		case '{', '}':
			// drop
		case '\\':
			if i+1 < len(s) && s[i+1] == ' ' {
				b.WriteByte(' ')
				i++
			} else {
				b.WriteByte('\\')
			}
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Surname returns the sort-key surname for a record: the Lastname column
// when the source table provides one, otherwise the last whitespace
// delimited token of the cleaned display name.
func (r *Record) Surname() string {
	if r.Lastname != "" {
		return r.Lastname
	}
	fields := strings.Fields(CleanLaTeX(r.Name))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// SortKey returns the case-folded key used for alphabetical comparisons.
func SortKey(s string) string {
	return strings.ToUpper(CleanLaTeX(s))
}
