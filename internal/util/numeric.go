package util

import "strconv"

type Number struct {
	Int     int64
	Float   float64
	IsInt   bool
	IsFloat bool
}

// ParseNumeric parses s as an integer (any base prefix accepted) or a float
func ParseNumeric(s string) (n Number, ok bool) {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		n.Int = i
		n.IsInt = true
		return n, true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n.Float = f
		n.IsFloat = true
		return n, true
	}

	return n, false
}

// Float64 returns n as a float64 regardless of how it was parsed
func (n Number) Float64() float64 {
	if n.IsInt {
		return float64(n.Int)
	}

	return n.Float
}

// Compare returns -1, 0 or 1 depending on whether n is less than, equal to or greater than other
func (n Number) Compare(other Number) int {
	if n.IsInt && other.IsInt {
		switch {
		case n.Int < other.Int:
			return -1
		case n.Int > other.Int:
			return 1
		}
		return 0
	}

	a, b := n.Float64(), other.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
