package fragment

import (
	"sort"
	"strings"

	"github.com/jarredbaird/express-jobly/ecode"
)

// ErrNoUpdateData is the message returned for an empty assignment list.
const ErrNoUpdateData = "no data to update"

// Field is a single column assignment.
type Field struct {
	Name  string
	Value any
}

// Update renders a SET list ("col"=$1, "col2"=$2) for the given fields in
// order. A nil Value binds SQL NULL. An empty list is a caller bug and fails
// with ecode.ParamErr.
func Update(fields []Field, names Names) (*Fragment, error) {
	if len(fields) == 0 {
		return nil, ecode.New(ecode.ParamErr, ErrNoUpdateData)
	}

	parts := make([]string, len(fields))
	values := make([]any, len(fields))
	for i, f := range fields {
		parts[i] = quote(names.Column(f.Name)) + "=" + placeholder(i+1)
		values[i] = f.Value
	}

	return &Fragment{
		Clause: strings.Join(parts, ", "),
		Values: values,
	}, nil
}

// UpdateMap is Update for an unordered mapping; fields are rendered in
// ascending key order.
func UpdateMap(data map[string]any, names Names) (*Fragment, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Field{Name: k, Value: data[k]}
	}
	return Update(fields, names)
}
