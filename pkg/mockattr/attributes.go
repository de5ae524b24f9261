package mockattr

import (
	"reflect"
	"sort"
)

// methodCalls is excluded even though no archetype lists it
const methodCalls = "method_calls"

// Lister is implemented by objects that report their own attribute names,
// such as slice-backed or dynamically generated mocks. It is only honored
// for non-struct types: struct mocks stub their methods, so their members
// always come from reflection.
type Lister interface {
	MockAttributes() []string
}

// Attributes lists every name obj exposes, sorted and deduplicated.
//
// A non-struct Lister reports its own names. Otherwise the exported methods
// of obj's method set (including pointer receivers) and its exported fields
// (embedded and promoted ones too) are used, plus the keys of string-keyed
// maps.
func Attributes(obj any) []string {
	if obj == nil {
		return []string{}
	}

	if l, ok := obj.(Lister); ok && !isStruct(obj) {
		return sortedUnique(l.MockAttributes())
	}

	names := make(map[string]struct{})

	v := reflect.ValueOf(obj)
	addMethods(v.Type(), names)

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return setToSorted(names)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(v.Type()) {
			if f.IsExported() {
				names[f.Name] = struct{}{}
			}
		}
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			iter := v.MapRange()
			for iter.Next() {
				names[iter.Key().String()] = struct{}{}
			}
		}
	}

	return setToSorted(names)
}

// NonMockAttributes returns the attributes of obj that the mocking library
// did not provide, in the order Attributes reports them. The result is never
// nil.
func NonMockAttributes(obj any) []string {
	attrs := Attributes(obj)

	out := make([]string, 0, len(attrs))
	for _, name := range attrs {
		if IsBaseline(name) || name == methodCalls {
			continue
		}
		out = append(out, name)
	}
	return out
}

func isStruct(obj any) bool {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func addMethods(t reflect.Type, names map[string]struct{}) {
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		t = reflect.PointerTo(t)
	}
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if m.IsExported() {
			names[m.Name] = struct{}{}
		}
	}
}

func sortedUnique(in []string) []string {
	names := make(map[string]struct{}, len(in))
	for _, name := range in {
		names[name] = struct{}{}
	}
	return setToSorted(names)
}

func setToSorted(names map[string]struct{}) []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
