package structs

import (
	"bytes"
	"encoding/json"
)

// Nullable tells an omitted JSON member apart from an explicit null.
//
//	{}              -> Set=false
//	{"salary":null} -> Set=true, Valid=false
//	{"salary":5}    -> Set=true, Valid=true, Value=5
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Of returns a present, non-null value.
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// Null returns a present null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Valid = false
		var zero T
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Any returns the value for binding to SQL, nil when null.
func (n Nullable[T]) Any() any {
	if !n.Valid {
		return nil
	}
	return n.Value
}

// ValidationValue exposes the wrapped value to the validator as a pointer,
// nil when null or omitted, so "omitnil" rules skip absent values only.
func (n Nullable[T]) ValidationValue() any {
	if !n.Valid {
		return (*T)(nil)
	}
	v := n.Value
	return &v
}
