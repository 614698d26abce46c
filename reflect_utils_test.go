package argspec

import (
	"errors"
	"testing"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/types"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name     string
		member   *Member
		flag     bool
		simple   bool
		array    bool
		enum     bool
		typeName string
	}{
		{name: "flag", member: NewMember("f", types.FlagKind(), nil), flag: true, typeName: "bool"},
		{name: "scalar", member: NewMember("s", types.ScalarKind("int"), nil), simple: true, typeName: "int"},
		{name: "array", member: NewMember("a", types.ArrayKind("string"), nil), array: true, typeName: "string"},
		{name: "scalar enum", member: NewMember("e", types.ScalarKind("Color").WithEnum("RED"), nil), simple: true, enum: true, typeName: "Color"},
		{name: "array enum", member: NewMember("ae", types.ArrayKind("Color").WithEnum("RED"), nil), array: true, enum: true, typeName: "Color"},
		{name: "unclassified", member: NewMember("u", types.UnclassifiedKind("chan int"), nil), typeName: "chan int"},
		{name: "nil member", member: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.flag, IsFlagType(tt.member))
			assert.Equal(t, tt.simple, IsSimpleType(tt.member))
			assert.Equal(t, tt.array, IsArrayType(tt.member))
			assert.Equal(t, tt.enum, IsEnumType(tt.member))
			assert.Equal(t, tt.typeName, ValueTypeName(tt.member))
		})
	}
}

func TestEnumConstants(t *testing.T) {
	var color Color
	m, err := BindMember("color", &color, nil)
	assert.NoError(t, err)
	assert.Equal(t, "[RED, GREEN, BLUE]", EnumConstants(m))

	assert.Equal(t, "[A]", EnumConstants(NewMember("x", types.ArrayKind("X").WithEnum("A"), nil)))
}

func TestEnumConstants_PanicsOnNonEnum(t *testing.T) {
	for _, m := range []*Member{NewMember("plain", types.ScalarKind("string"), nil), nil} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				assert.True(t, ok)
				assert.True(t, errors.Is(err, errs.ErrNotEnum))
			}()
			EnumConstants(m)
		}()
	}
}

func TestMemberConstraint(t *testing.T) {
	_, ok := MemberConstraint(nil)
	assert.False(t, ok)

	c, ok := MemberConstraint(NewMember("m", types.FlagKind(), nil))
	assert.False(t, ok)
	assert.True(t, c.IsEmpty())

	c, ok = MemberConstraint(NewMember("m", types.FlagKind(), &Constraint{}))
	assert.True(t, ok)
	assert.Equal(t, "none", c.String())
}
