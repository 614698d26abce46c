package argspec

import (
	"reflect"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/internal/parse"
	"github.com/napalu/argspec/types"
)

// Member is an opaque handle to the field or accessor an Option or Argument
// describes. Its ValueKind is fixed when the member is created.
type Member struct {
	name       string
	kind       types.ValueKind
	constraint *Constraint
	value      reflect.Value
}

// NewMember creates a member from an explicit classification. constraint may be nil.
func NewMember(name string, kind types.ValueKind, constraint *Constraint) *Member {
	m := &Member{
		name: name,
		kind: kind,
	}
	if constraint != nil {
		c := constraint.clone()
		m.constraint = &c
	}

	return m
}

// BindMember creates a member for the variable ptr points to, classifying it
// from its Go type. constraint may be nil.
func BindMember(name string, ptr any, constraint *Constraint) (*Member, error) {
	if ptr == nil {
		return nil, errs.ErrBindNil
	}

	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr {
		return nil, errs.ErrPointerExpected
	}
	if v.IsNil() {
		return nil, errs.ErrBindNil
	}

	m := NewMember(name, parse.InferValueKind(v.Type().Elem()), constraint)
	m.value = v.Elem()

	return m, nil
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Kind() types.ValueKind {
	return m.kind
}

// Value returns the bound variable, or the zero Value for members created with NewMember
func (m *Member) Value() reflect.Value {
	return m.value
}
