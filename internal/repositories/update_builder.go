package repositories

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrColumnNotAllowed is returned when an update names a column outside the allow-list.
	ErrColumnNotAllowed = errors.New("column not allowed in update")
	// ErrNoAssignments is returned when Build is called without any Set.
	ErrNoAssignments = errors.New("no columns to update")
)

// DateUpdatableColumns lists the columns of dates an update may assign, in statement order.
var DateUpdatableColumns = []string{
	"activity_name",
	"location",
	"date_day",
	"rating",
	"notes",
	"notes_edited_by",
}

// UpdateBuilder assembles a parameterized UPDATE from allow-listed column names.
// Column names never come from the caller verbatim: only names found in the
// allow-list are written into the statement.
type UpdateBuilder struct {
	table   string
	allowed []string
	values  map[string]any
	touch   string
}

// NewUpdateBuilder creates a builder for table accepting only the allowed columns.
func NewUpdateBuilder(table string, allowed ...string) *UpdateBuilder {
	return &UpdateBuilder{
		table:   table,
		allowed: allowed,
		values:  make(map[string]any, len(allowed)),
	}
}

// Touch appends "<column> = NOW()" to every built statement.
func (b *UpdateBuilder) Touch(column string) *UpdateBuilder {
	b.touch = column
	return b
}

// Set records an assignment. Setting the same column twice keeps the last value.
func (b *UpdateBuilder) Set(column string, value any) error {
	for _, c := range b.allowed {
		if c == column {
			b.values[column] = value
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrColumnNotAllowed, column)
}

// Len returns the number of recorded assignments.
func (b *UpdateBuilder) Len() int {
	return len(b.values)
}

// Build returns "UPDATE <table> SET ... WHERE id = $n" and its args, with
// assignments ordered as in the allow-list.
func (b *UpdateBuilder) Build(id any) (string, []any, error) {
	if len(b.values) == 0 {
		return "", nil, ErrNoAssignments
	}

	sets := make([]string, 0, len(b.values)+1)
	args := make([]any, 0, len(b.values)+1)
	for _, c := range b.allowed {
		v, ok := b.values[c]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", c, len(args)))
	}
	if b.touch != "" {
		sets = append(sets, b.touch+" = NOW()")
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", b.table, strings.Join(sets, ", "), len(args))
	return query, args, nil
}
