package types

import (
	"slices"
	"strings"
)

// Shape classifies how a member consumes command-line values
type Shape int

const (
	Unclassified Shape = iota // Unclassified denotes a member argspec cannot describe
	Flag                      // Flag denotes a boolean member (presence/absence, no value consumed)
	Scalar                    // Scalar denotes a member holding a single value
	Array                     // Array denotes a member holding an ordered collection of values
)

// String returns the string representation of a Shape
func (s Shape) String() string {
	switch s {
	case Flag:
		return "flag"
	case Scalar:
		return "scalar"
	case Array:
		return "array"
	case Unclassified:
		fallthrough
	default:
		return "unclassified"
	}
}

// ShapeFromString converts a tag value to a Shape. Unknown values yield Unclassified.
func ShapeFromString(s string) Shape {
	switch strings.ToLower(s) {
	case "flag":
		return Flag
	case "scalar", "simple":
		return Scalar
	case "array":
		return Array
	default:
		return Unclassified
	}
}

// ValueKind is the classification of a member's value type. It is computed once
// when a member is created. Enum variants combine with Scalar or Array shapes.
type ValueKind struct {
	shape      Shape
	typeName   string
	enumValues []string
}

// FlagKind describes a boolean member
func FlagKind() ValueKind {
	return ValueKind{shape: Flag, typeName: "bool"}
}

// ScalarKind describes a single value of typeName
func ScalarKind(typeName string) ValueKind {
	return ValueKind{shape: Scalar, typeName: typeName}
}

// ArrayKind describes a collection whose elements are of elemTypeName
func ArrayKind(elemTypeName string) ValueKind {
	return ValueKind{shape: Array, typeName: elemTypeName}
}

// UnclassifiedKind describes a member which is neither flag, scalar nor array
func UnclassifiedKind(typeName string) ValueKind {
	return ValueKind{shape: Unclassified, typeName: typeName}
}

// WithEnum returns a copy of k restricted to the given enumeration constants
func (k ValueKind) WithEnum(values ...string) ValueKind {
	k.enumValues = slices.Clone(values)
	return k
}

// WithShape returns a copy of k with its shape replaced
func (k ValueKind) WithShape(shape Shape) ValueKind {
	k.shape = shape
	return k
}

func (k ValueKind) Shape() Shape {
	return k.shape
}

// TypeName is the scalar type name, or the element type name for arrays
func (k ValueKind) TypeName() string {
	return k.typeName
}

func (k ValueKind) IsEnum() bool {
	return len(k.enumValues) > 0
}

// EnumValues returns a copy of the enumeration constants in declaration order
func (k ValueKind) EnumValues() []string {
	return slices.Clone(k.enumValues)
}

// String returns a compact description such as "array of string"
func (k ValueKind) String() string {
	var s string
	switch k.shape {
	case Flag:
		s = "flag"
	case Array:
		s = "array of " + k.typeName
	default:
		s = k.typeName
	}
	if k.IsEnum() {
		s += " {" + strings.Join(k.enumValues, "|") + "}"
	}

	return s
}

// Enumerator is implemented by value types which form a closed set of constants.
// Slices whose element type implements Enumerator are arrays of enums.
type Enumerator interface {
	EnumValues() []string
}
