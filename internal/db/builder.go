package db

import "strings"

// Conditions accumulates WHERE predicates with their bind arguments in
// order, so dynamic filters never concatenate values into SQL.
type Conditions struct {
	clauses []string
	args    []any
}

// Add appends one predicate and its arguments.
func (c *Conditions) Add(clause string, args ...any) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

// Where renders the accumulated predicates as a WHERE clause joined with
// AND, or the empty string when there are none.
func (c *Conditions) Where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.clauses, " AND ")
}

// Args returns the bind arguments in predicate order, optionally followed
// by extra trailing arguments (LIMIT/OFFSET values).
func (c *Conditions) Args(extra ...any) []any {
	out := make([]any, 0, len(c.args)+len(extra))
	out = append(out, c.args...)
	out = append(out, extra...)
	return out
}
