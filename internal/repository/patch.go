package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPatch is returned when a partial update carries no fields.
var ErrEmptyPatch = errors.New("no fields to update")

// setClause assembles a parameterized UPDATE SET body from the fields
// present in a patch. updated_at=NOW() is always appended.
type setClause struct {
	assignments []string
	args        []any
}

func (s *setClause) set(column string, value any) {
	s.args = append(s.args, value)
	s.assignments = append(s.assignments, fmt.Sprintf("%s=$%d", column, len(s.args)))
}

func (s *setClause) empty() bool {
	return len(s.assignments) == 0
}

// build returns the SET body and the next free placeholder index.
func (s *setClause) build() (string, int) {
	parts := make([]string, 0, len(s.assignments)+1)
	parts = append(parts, s.assignments...)
	parts = append(parts, "updated_at=NOW()")
	return strings.Join(parts, ", "), len(s.args) + 1
}
