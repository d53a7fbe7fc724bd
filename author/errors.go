package author

import "fmt"

// MissingFieldError reports a required column that is absent or empty.
type MissingFieldError struct {
	Field string
	Row   int // zero-based input row position
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("row %d: required field %q is missing or empty", e.Row, e.Field)
}

// InvalidOrcidError reports a malformed ORCID identifier.
type InvalidOrcidError struct {
	Name  string // author the identifier belongs to
	Value string
}

func (e *InvalidOrcidError) Error() string {
	return fmt.Sprintf("invalid ORCID %q for %s (expected XXXX-XXXX-XXXX-XXXX)", e.Value, e.Name)
}
