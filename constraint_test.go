package argspec

import (
	"errors"
	"testing"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraint_String(t *testing.T) {
	tests := []struct {
		name       string
		constraint Constraint
		want       string
	}{
		{name: "empty", constraint: Constraint{}, want: "none"},
		{name: "ignore case alone is empty", constraint: Constraint{IgnoreCase: true}, want: "none"},
		{name: "max", constraint: Constraint{Max: "10"}, want: "max=10 "},
		{name: "allowed", constraint: Constraint{AllowedValues: []string{"x"}, IgnoreCase: true}, want: "allowed values=[x] (ignore case=true) "},
		{name: "regexp", constraint: Constraint{Regexp: `\d+`}, want: `regexp=\d+ `},
		{name: "min and regexp", constraint: Constraint{Min: "a", Regexp: "a+"}, want: "min=a regexp=a+ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.constraint.String())
			assert.Equal(t, tt.want == "none", tt.constraint.IsEmpty())
		})
	}
}

func TestConstraint_Compile(t *testing.T) {
	re, err := Constraint{}.Compile()
	assert.NoError(t, err)
	assert.Nil(t, re)

	re, err = Constraint{Regexp: "^[0-9]+$"}.Compile()
	require.NoError(t, err)
	assert.True(t, re.MatchString("42"))

	_, err = Constraint{Regexp: "(unclosed"}.Compile()
	assert.True(t, errors.Is(err, errs.ErrRegexCompile))
}

func TestConstraint_Validate(t *testing.T) {
	tests := []struct {
		name       string
		constraint Constraint
		kind       types.ValueKind
		wantErr    error
	}{
		{name: "ordered ints", constraint: Constraint{Min: "1", Max: "10"}, kind: types.ScalarKind("int")},
		{name: "equal bounds", constraint: Constraint{Min: "5", Max: "5"}, kind: types.ScalarKind("uint8")},
		{name: "reversed ints", constraint: Constraint{Min: "10", Max: "1"}, kind: types.ScalarKind("int"), wantErr: errs.ErrConstraintBounds},
		{name: "reversed floats in array", constraint: Constraint{Min: "2.5", Max: "-1"}, kind: types.ArrayKind("float64"), wantErr: errs.ErrConstraintBounds},
		{name: "bad numeric bound", constraint: Constraint{Min: "low"}, kind: types.ScalarKind("int"), wantErr: errs.ErrInvalidBound},
		{name: "reversed durations", constraint: Constraint{Min: "1h", Max: "30m"}, kind: types.ScalarKind("Duration"), wantErr: errs.ErrConstraintBounds},
		{name: "bad duration", constraint: Constraint{Max: "forever"}, kind: types.ScalarKind("Duration"), wantErr: errs.ErrInvalidBound},
		{name: "ordered dates", constraint: Constraint{Min: "2020-01-01", Max: "2024-12-31"}, kind: types.ScalarKind("Time")},
		{name: "reversed dates", constraint: Constraint{Min: "2024-12-31", Max: "2020-01-01"}, kind: types.ScalarKind("Time"), wantErr: errs.ErrConstraintBounds},
		{name: "strings are not ordered", constraint: Constraint{Min: "z", Max: "a"}, kind: types.ScalarKind("string")},
		{name: "flags skip bounds", constraint: Constraint{Min: "z"}, kind: types.FlagKind()},
		{name: "invalid regexp", constraint: Constraint{Regexp: "[a-"}, kind: types.FlagKind(), wantErr: errs.ErrRegexCompile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constraint.validate(tt.kind)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestConstraint_Clone(t *testing.T) {
	c := Constraint{AllowedValues: []string{"a"}}
	clone := c.clone()
	clone.AllowedValues[0] = "b"

	assert.Equal(t, []string{"a"}, c.AllowedValues)
}
