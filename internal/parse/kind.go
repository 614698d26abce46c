package parse

import (
	"encoding"
	"reflect"
	"time"

	"github.com/napalu/argspec/internal/util"
	"github.com/napalu/argspec/types"
)

var (
	timeType            = reflect.TypeOf(time.Time{})
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	enumeratorType      = reflect.TypeOf((*types.Enumerator)(nil)).Elem()
)

// InferValueKind classifies a Go type. Pointers are unwrapped first.
//
//   - bool                                   -> Flag
//   - string, numbers, time.Time, time.Duration,
//     encoding.TextUnmarshaler implementations -> Scalar
//   - slices and arrays of the above         -> Array of the element type
//   - anything else                          -> Unclassified
//
// Types implementing types.Enumerator, or slices of them, carry their constants.
func InferValueKind(t reflect.Type) types.ValueKind {
	if t == nil {
		return types.UnclassifiedKind("")
	}

	t = util.UnwrapType(t)
	switch {
	case t.Kind() == reflect.Bool:
		return types.FlagKind()
	case isScalarType(t):
		return withEnum(types.ScalarKind(util.TypeName(t)), t)
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		elem := util.UnwrapType(t.Elem())
		if elem.Kind() == reflect.Bool || isScalarType(elem) {
			return withEnum(types.ArrayKind(util.TypeName(elem)), elem)
		}
	}

	return types.UnclassifiedKind(util.TypeName(t))
}

func isScalarType(t reflect.Type) bool {
	if t == timeType || t == durationType {
		return true
	}

	switch t.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Interface:
		return false
	}

	return reflect.PointerTo(t).Implements(textUnmarshalerType)
}

func withEnum(kind types.ValueKind, t reflect.Type) types.ValueKind {
	if values := enumValues(t); len(values) > 0 {
		return kind.WithEnum(values...)
	}

	return kind
}

func enumValues(t reflect.Type) []string {
	switch {
	case t.Kind() == reflect.Interface:
		return nil
	case t.Implements(enumeratorType):
		return reflect.Zero(t).Interface().(types.Enumerator).EnumValues()
	case reflect.PointerTo(t).Implements(enumeratorType):
		return reflect.New(t).Interface().(types.Enumerator).EnumValues()
	}

	return nil
}
