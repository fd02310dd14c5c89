package validator

import (
	"net/url"
	"reflect"
	"sort"
	"strings"
)

// UnknownKeys returns the query keys that do not match any form tag of the
// struct pointed to by target, sorted.
func UnknownKeys(query url.Values, target any) []string {
	allowed := formKeys(reflect.TypeOf(target))
	var unknown []string
	for key := range query {
		if _, ok := allowed[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func formKeys(t reflect.Type) map[string]struct{} {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("form"), ",", 2)[0]
		if name != "" && name != "-" {
			keys[name] = struct{}{}
		}
	}
	return keys
}
