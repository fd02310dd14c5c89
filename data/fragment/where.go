package fragment

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jarredbaird/express-jobly/ecode"
)

// ErrNoFilterData is the message returned for an empty condition list.
const ErrNoFilterData = "no filter data"

// Kind selects how a condition compares its column.
type Kind int

const (
	// Contains is a case-insensitive substring match.
	Contains Kind = iota
	// Min is an inclusive lower bound.
	Min
	// Max is an inclusive upper bound.
	Max
)

func (k Kind) String() string {
	switch k {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "contains"
	}
}

// Condition is one predicate of a WHERE clause.
type Condition struct {
	Kind  Kind
	Name  string
	Value any
}

// ConditionFor classifies a filter key: "minX" is a lower bound on x,
// "maxX" an upper bound on x, anything else a substring match on the key.
func ConditionFor(key string, value any) Condition {
	if name, ok := boundField(key, "min"); ok {
		return Condition{Kind: Min, Name: name, Value: value}
	}
	if name, ok := boundField(key, "max"); ok {
		return Condition{Kind: Max, Name: name, Value: value}
	}
	return Condition{Kind: Contains, Name: key, Value: value}
}

// boundField strips a min/max prefix from camelCase keys such as
// "minSalary", returning "salary".
func boundField(key, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok || rest == "" {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return "", false
	}
	return string(unicode.ToLower(r)) + rest[size:], true
}

// Where renders conditions joined with AND. Contains values are bound as
// %value%. An empty list fails with ecode.ParamErr.
func Where(conds []Condition, names Names) (*Fragment, error) {
	if len(conds) == 0 {
		return nil, ecode.New(ecode.ParamErr, ErrNoFilterData)
	}

	parts := make([]string, len(conds))
	values := make([]any, len(conds))
	for i, c := range conds {
		col := quote(names.Column(c.Name))
		ph := placeholder(i + 1)
		switch c.Kind {
		case Min:
			parts[i] = col + " >= " + ph
			values[i] = c.Value
		case Max:
			parts[i] = col + " <= " + ph
			values[i] = c.Value
		default:
			parts[i] = "lower(" + col + ") LIKE lower(" + ph + ")"
			values[i] = fmt.Sprintf("%%%v%%", c.Value)
		}
	}

	return &Fragment{
		Clause: strings.Join(parts, " AND "),
		Values: values,
	}, nil
}

// WhereMap classifies each key with ConditionFor and renders them in
// ascending key order.
func WhereMap(filters map[string]any, names Names) (*Fragment, error) {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conds := make([]Condition, len(keys))
	for i, k := range keys {
		conds[i] = ConditionFor(k, filters[k])
	}
	return Where(conds, names)
}
