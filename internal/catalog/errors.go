package catalog

import (
	"fmt"
	"strings"
)

// Violation describes one integrity problem found while loading catalog data.
type Violation struct {
	Entity  string
	ID      string
	Message string
}

func (v Violation) String() string {
	if v.ID == "" {
		return fmt.Sprintf("%s: %s", v.Entity, v.Message)
	}
	return fmt.Sprintf("%s %q: %s", v.Entity, v.ID, v.Message)
}

// IntegrityError is returned by New when the static catalog data is corrupt.
// It lists every violation found, not only the first.
type IntegrityError struct {
	Violations []Violation
}

func (e *IntegrityError) Error() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = v.String()
	}
	return fmt.Sprintf("catalog integrity check failed (%d violations):\n%s",
		len(e.Violations), strings.Join(lines, "\n"))
}
