package argspec

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/internal/util"
	"github.com/napalu/argspec/types"
)

// Constraint declares bounds, allowed values or a pattern for the value of a
// member. Empty fields are unset; a Constraint with every field unset is
// displayed as "none".
type Constraint struct {
	Min           string
	Max           string
	AllowedValues []string
	IgnoreCase    bool // applies to AllowedValues
	Regexp        string
}

// IsEmpty reports whether no restriction is set
func (c Constraint) IsEmpty() bool {
	return c.Min == "" && c.Max == "" && len(c.AllowedValues) == 0 && c.Regexp == ""
}

// String returns the restrictions in help format, e.g. "min=1 max=10 ", or "none"
func (c Constraint) String() string {
	var b strings.Builder
	if c.Min != "" {
		fmt.Fprintf(&b, "min=%s ", c.Min)
	}
	if c.Max != "" {
		fmt.Fprintf(&b, "max=%s ", c.Max)
	}
	if len(c.AllowedValues) > 0 {
		fmt.Fprintf(&b, "allowed values=%s ", util.FormatList(c.AllowedValues))
		fmt.Fprintf(&b, "(ignore case=%t) ", c.IgnoreCase)
	}
	if c.Regexp != "" {
		fmt.Fprintf(&b, "regexp=%s ", c.Regexp)
	}

	if b.Len() == 0 {
		return "none"
	}

	return b.String()
}

// Compile compiles Regexp. It returns nil without error when no pattern is set.
func (c Constraint) Compile() (*regexp.Regexp, error) {
	if c.Regexp == "" {
		return nil, nil
	}

	re, err := regexp.Compile(c.Regexp)
	if err != nil {
		return nil, errs.ErrRegexCompile.WithArgs(c.Regexp).Wrap(err)
	}

	return re, nil
}

// validate checks the constraint is coherent for a member of the given kind.
// Bounds are only compared when the member type gives them an order.
func (c Constraint) validate(kind types.ValueKind) error {
	if _, err := c.Compile(); err != nil {
		return err
	}

	if kind.Shape() != types.Scalar && kind.Shape() != types.Array {
		return nil
	}

	boundKind := util.BoundKindOf(kind.TypeName())
	for _, bound := range []string{c.Min, c.Max} {
		if bound != "" && !util.ValidBound(boundKind, bound) {
			return errs.ErrInvalidBound.WithArgs(bound, boundKind)
		}
	}

	if c.Min == "" || c.Max == "" {
		return nil
	}

	if cmp, bad, ok := util.CompareBounds(boundKind, c.Min, c.Max); ok {
		if bad != "" {
			return errs.ErrInvalidBound.WithArgs(bad, boundKind)
		}
		if cmp > 0 {
			return errs.ErrConstraintBounds.WithArgs(c.Min, c.Max)
		}
	}

	return nil
}

func (c Constraint) clone() Constraint {
	c.AllowedValues = slices.Clone(c.AllowedValues)
	return c
}
