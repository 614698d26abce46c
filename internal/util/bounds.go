package util

import (
	"time"

	"github.com/araddon/dateparse"
)

// BoundKind selects how constraint bounds are compared
type BoundKind int

const (
	BoundNone BoundKind = iota
	BoundNumeric
	BoundTime
	BoundDuration
)

// String returns the human-readable name used in error messages
func (k BoundKind) String() string {
	switch k {
	case BoundNumeric:
		return "number"
	case BoundTime:
		return "time"
	case BoundDuration:
		return "duration"
	default:
		return "value"
	}
}

// BoundKindOf returns how bounds of a member whose scalar type is typeName compare
func BoundKindOf(typeName string) BoundKind {
	switch typeName {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64":
		return BoundNumeric
	case "Time":
		return BoundTime
	case "Duration":
		return BoundDuration
	default:
		return BoundNone
	}
}

// CompareBounds compares lower and upper under kind. ok is false when the kind is
// BoundNone; bad names the bound which failed to parse, if any.
func CompareBounds(kind BoundKind, lower, upper string) (cmp int, bad string, ok bool) {
	switch kind {
	case BoundNumeric:
		lo, valid := ParseNumeric(lower)
		if !valid {
			return 0, lower, true
		}
		hi, valid := ParseNumeric(upper)
		if !valid {
			return 0, upper, true
		}
		return lo.Compare(hi), "", true
	case BoundTime:
		lo, err := dateparse.ParseAny(lower)
		if err != nil {
			return 0, lower, true
		}
		hi, err := dateparse.ParseAny(upper)
		if err != nil {
			return 0, upper, true
		}
		return lo.Compare(hi), "", true
	case BoundDuration:
		lo, err := time.ParseDuration(lower)
		if err != nil {
			return 0, lower, true
		}
		hi, err := time.ParseDuration(upper)
		if err != nil {
			return 0, upper, true
		}
		switch {
		case lo < hi:
			return -1, "", true
		case lo > hi:
			return 1, "", true
		}
		return 0, "", true
	}

	return 0, "", false
}

// ValidBound reports whether a single bound parses under kind
func ValidBound(kind BoundKind, v string) bool {
	switch kind {
	case BoundNumeric:
		_, ok := ParseNumeric(v)
		return ok
	case BoundTime:
		_, err := dateparse.ParseAny(v)
		return err == nil
	case BoundDuration:
		_, err := time.ParseDuration(v)
		return err == nil
	}

	return true
}
