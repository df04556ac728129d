package postgres

import (
	"reflect"
	"sync"
)

// columnCache maps a struct type to the field indices and names of its "db" tags.
var columnCache sync.Map // map[reflect.Type]*columnSet

type columnSet struct {
	names   []string
	indices []int
}

func columnsOfType(t reflect.Type) *columnSet {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := columnCache.Load(t); ok {
		return cached.(*columnSet)
	}

	set := &columnSet{}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("db")
			if tag == "" || tag == "-" {
				continue
			}
			set.names = append(set.names, tag)
			set.indices = append(set.indices, i)
		}
	}
	columnCache.Store(t, set)
	return set
}

// dbColumns returns the "db" tag names of T in field order. Scanning with scany
// matches these names, so SELECT lists built from them always fit the row struct.
func dbColumns[T any]() []string {
	var zero T
	return columnsOfType(reflect.TypeOf(zero)).names
}

// dbValues returns the field values of v in the order of dbColumns.
func dbValues(v any) []any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	set := columnsOfType(rv.Type())
	out := make([]any, len(set.indices))
	for i, idx := range set.indices {
		out[i] = rv.Field(idx).Interface()
	}
	return out
}
