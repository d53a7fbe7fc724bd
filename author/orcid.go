package author

import (
	"regexp"
	"strings"
)

var orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// NormalizeORCID strips URL prefixes from an ORCID value, leaving the bare
// identifier.
func NormalizeORCID(value string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "https://orcid.org/")
	value = strings.TrimPrefix(value, "http://orcid.org/")
	value = strings.TrimPrefix(value, "orcid.org/")
	return value
}

// ValidORCID reports whether value is a bare ORCID identifier: four groups
// of four separated by hyphens, last character may be an X checksum.
func ValidORCID(value string) bool {
	return orcidPattern.MatchString(value)
}
