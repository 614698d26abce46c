package util

import (
	"reflect"

	"github.com/napalu/argspec/errs"
)

// UnwrapValue recursively unwraps pointers and returns the underlying value
func UnwrapValue(v reflect.Value) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, errs.ErrNilPointer
		}
		v = v.Elem()
	}

	return v, nil
}

// UnwrapType recursively unwraps pointer types and returns the underlying type
func UnwrapType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

// TypeName returns the unqualified name of a named type, or the type literal otherwise
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if name := t.Name(); name != "" {
		return name
	}

	return t.String()
}
