package parse

import (
	"net/netip"
	"reflect"
	"testing"
	"time"

	"github.com/napalu/argspec/types"
	"github.com/stretchr/testify/assert"
)

type color string

func (color) EnumValues() []string {
	return []string{"RED", "GREEN", "BLUE"}
}

type level int

func (*level) EnumValues() []string {
	return []string{"LOW", "HIGH"}
}

type settings struct {
	Depth int
}

func TestInferValueKind(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		shape    types.Shape
		typeName string
		enum     []string
	}{
		{name: "bool", value: false, shape: types.Flag, typeName: "bool"},
		{name: "pointer to bool", value: new(bool), shape: types.Flag, typeName: "bool"},
		{name: "string", value: "", shape: types.Scalar, typeName: "string"},
		{name: "int64", value: int64(0), shape: types.Scalar, typeName: "int64"},
		{name: "float32", value: float32(0), shape: types.Scalar, typeName: "float32"},
		{name: "duration", value: time.Second, shape: types.Scalar, typeName: "Duration"},
		{name: "time", value: time.Time{}, shape: types.Scalar, typeName: "Time"},
		{name: "text unmarshaler", value: netip.Addr{}, shape: types.Scalar, typeName: "Addr"},
		{name: "slice of string", value: []string{}, shape: types.Array, typeName: "string"},
		{name: "array of int", value: [3]int{}, shape: types.Array, typeName: "int"},
		{name: "slice of bool", value: []bool{}, shape: types.Array, typeName: "bool"},
		{name: "slice of pointers", value: []*int{}, shape: types.Array, typeName: "int"},
		{name: "enum", value: color(""), shape: types.Scalar, typeName: "color", enum: []string{"RED", "GREEN", "BLUE"}},
		{name: "enum on pointer receiver", value: level(0), shape: types.Scalar, typeName: "level", enum: []string{"LOW", "HIGH"}},
		{name: "slice of enum", value: []color{}, shape: types.Array, typeName: "color", enum: []string{"RED", "GREEN", "BLUE"}},
		{name: "struct", value: settings{}, shape: types.Unclassified, typeName: "settings"},
		{name: "map", value: map[string]int{}, shape: types.Unclassified, typeName: "map[string]int"},
		{name: "slice of struct", value: []settings{}, shape: types.Unclassified, typeName: "[]parse.settings"},
		{name: "func", value: func() {}, shape: types.Unclassified, typeName: "func()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind := InferValueKind(reflect.TypeOf(tt.value))
			assert.Equal(t, tt.shape, kind.Shape())
			assert.Equal(t, tt.typeName, kind.TypeName())
			assert.Equal(t, len(tt.enum) > 0, kind.IsEnum())
			if len(tt.enum) > 0 {
				assert.Equal(t, tt.enum, kind.EnumValues())
			}
		})
	}
}

func TestInferValueKind_Nil(t *testing.T) {
	kind := InferValueKind(nil)
	assert.Equal(t, types.Unclassified, kind.Shape())
	assert.Empty(t, kind.TypeName())
}
