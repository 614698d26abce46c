package argspec

import (
	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/internal/util"
	"github.com/napalu/argspec/types"
)

// IsFlagType reports whether the member holds a boolean (presence/absence) value
func IsFlagType(m *Member) bool {
	return m != nil && m.kind.Shape() == types.Flag
}

// IsSimpleType reports whether the member holds a single non-boolean scalar value
func IsSimpleType(m *Member) bool {
	return m != nil && m.kind.Shape() == types.Scalar
}

// IsArrayType reports whether the member holds a repeated collection of values
func IsArrayType(m *Member) bool {
	return m != nil && m.kind.Shape() == types.Array
}

// IsEnumType reports whether the member's value, or element, type is a closed enumeration.
// Enumerations combine with the simple and array shapes.
func IsEnumType(m *Member) bool {
	return m != nil && m.kind.IsEnum()
}

// ValueTypeName returns the scalar type name, or the element type name for arrays.
// Unclassified members return whatever name they were created with.
func ValueTypeName(m *Member) string {
	if m == nil {
		return ""
	}

	return m.kind.TypeName()
}

// EnumConstants returns the legal constants of an enum member formatted as "[A, B, C]".
// It panics when IsEnumType(m) is false; callers guard with IsEnumType first.
func EnumConstants(m *Member) string {
	if !IsEnumType(m) {
		name := "<nil>"
		if m != nil {
			name = m.name
		}
		panic(errs.ErrNotEnum.WithArgs(name))
	}

	return util.FormatList(m.kind.EnumValues())
}

// MemberConstraint returns the Constraint attached to m and true, or the zero
// Constraint and false when none is attached.
func MemberConstraint(m *Member) (Constraint, bool) {
	if m == nil || m.constraint == nil {
		return Constraint{}, false
	}

	return m.constraint.clone(), true
}
