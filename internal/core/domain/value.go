package domain

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	// KindString is a text value.
	KindString Kind = iota

	// KindInt is an integer value.
	KindInt

	// KindFloat is a floating-point value.
	KindFloat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "text"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is one cell of a record or dataset.
// The zero value is the empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
}

// StringValue returns a text value.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// IntValue returns an integer value.
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// FloatValue returns a floating-point value.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Kind returns the type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumeric reports whether the value holds an integer or a float.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// Text returns the raw string for text values and "" otherwise.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Int returns the integer held by the value.
// Floats with no fractional part are accepted.
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		if v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
			return int64(v.f), true
		}
	}
	return 0, false
}

// Float returns the value as a float64. Integers are widened.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// IsBlank reports whether the value is an empty or whitespace-only string.
func (v Value) IsBlank() bool {
	return v.kind == KindString && strings.TrimSpace(v.s) == ""
}

// String renders the value the way it is written to a table.
// Floats always carry a decimal point so 1000 is written "1000.0".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return FormatFloat(v.f)
	default:
		return v.s
	}
}

// FormatFloat renders f in its shortest round-trip form with at least one
// fractional digit.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
