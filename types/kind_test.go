package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeFromString(t *testing.T) {
	tests := []struct {
		input string
		want  Shape
	}{
		{"flag", Flag},
		{"FLAG", Flag},
		{"scalar", Scalar},
		{"simple", Scalar},
		{"array", Array},
		{"map", Unclassified},
		{"", Unclassified},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShapeFromString(tt.input), tt.input)
	}
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "flag", Flag.String())
	assert.Equal(t, "scalar", Scalar.String())
	assert.Equal(t, "array", Array.String())
	assert.Equal(t, "unclassified", Unclassified.String())
	assert.Equal(t, "unclassified", Shape(42).String())
}

func TestValueKind(t *testing.T) {
	t.Run("constructors", func(t *testing.T) {
		assert.Equal(t, Flag, FlagKind().Shape())
		assert.Equal(t, "bool", FlagKind().TypeName())
		assert.Equal(t, Scalar, ScalarKind("int").Shape())
		assert.Equal(t, Array, ArrayKind("string").Shape())
		assert.Equal(t, "string", ArrayKind("string").TypeName())
		assert.Equal(t, Unclassified, UnclassifiedKind("map[string]int").Shape())
	})

	t.Run("enum is independent of shape", func(t *testing.T) {
		scalar := ScalarKind("Color").WithEnum("RED", "GREEN")
		array := ArrayKind("Color").WithEnum("RED", "GREEN")

		assert.True(t, scalar.IsEnum())
		assert.True(t, array.IsEnum())
		assert.Equal(t, Scalar, scalar.Shape())
		assert.Equal(t, Array, array.Shape())
		assert.False(t, ScalarKind("string").IsEnum())
	})

	t.Run("enum values are copied", func(t *testing.T) {
		values := []string{"A", "B"}
		kind := ScalarKind("Letter").WithEnum(values...)
		values[0] = "Z"

		got := kind.EnumValues()
		assert.Equal(t, []string{"A", "B"}, got)
		got[1] = "Y"
		assert.Equal(t, []string{"A", "B"}, kind.EnumValues())
	})

	t.Run("with shape keeps type name and enum", func(t *testing.T) {
		kind := ScalarKind("Color").WithEnum("RED").WithShape(Array)
		assert.Equal(t, Array, kind.Shape())
		assert.Equal(t, "Color", kind.TypeName())
		assert.True(t, kind.IsEnum())
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "flag", FlagKind().String())
		assert.Equal(t, "int", ScalarKind("int").String())
		assert.Equal(t, "array of string", ArrayKind("string").String())
		assert.Equal(t, "Color {RED|GREEN}", ScalarKind("Color").WithEnum("RED", "GREEN").String())
	})
}
