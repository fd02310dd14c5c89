// Package fragment renders partial SQL clauses with positional parameters.
//
// It knows nothing about any table: callers hand it field names, values and
// a Names table mapping external field names to storage columns. Rendered
// placeholders use the $n form understood by PostgreSQL and SQLite.
//
//	frag, err := fragment.Update([]fragment.Field{
//	    {Name: "title", Value: "New"},
//	    {Name: "companyHandle", Value: "c3"},
//	}, fragment.Names{"companyHandle": "company_handle"})
//	// frag.Clause: "title"=$1, "company_handle"=$2
//	// frag.Values: ["New", "c3"]
package fragment

import (
	"strconv"
	"strings"
)

// Names maps external field names to storage column names.
type Names map[string]string

// Column resolves the column for a field, falling back to the field name.
func (n Names) Column(field string) string {
	if col, ok := n[field]; ok && col != "" {
		return col
	}
	return field
}

// Fragment is a rendered clause and the values bound to its placeholders.
// Values[i] binds placeholder $i+1.
type Fragment struct {
	Clause string
	Values []any
}

// Next returns the first placeholder index not used by the fragment.
func (f *Fragment) Next() int {
	return len(f.Values) + 1
}

// Args returns the fragment values followed by extra trailing values, for
// statements that append their own placeholders after the fragment.
func (f *Fragment) Args(extra ...any) []any {
	args := make([]any, 0, len(f.Values)+len(extra))
	args = append(args, f.Values...)
	return append(args, extra...)
}

func quote(column string) string {
	return `"` + strings.ReplaceAll(column, `"`, `""`) + `"`
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}
