package column

import (
	"fmt"
	"regexp"

	"kmt/kmterr"
	"kmt/value"
)

var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Meta describes a column's name, display name, and scalar type. It is
// immutable once a column is constructed from it.
type Meta struct {
	Name    string
	Display string
	Type    value.Kind
}

// Validate checks the name grammar ([A-Za-z_][A-Za-z0-9_]*) and fills in
// Display from Name when Display is empty.
func (m *Meta) Validate() error {
	if !nameRe.MatchString(m.Name) {
		return fmt.Errorf("column name %q does not match [A-Za-z_][A-Za-z0-9_]*: %w", m.Name, kmterr.ErrInvalidArgument)
	}
	if m.Display == "" {
		m.Display = m.Name
	}
	return nil
}
