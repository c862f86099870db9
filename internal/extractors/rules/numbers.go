package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var errEmptyNumber = errors.New("empty number")

// stripSpaces removes every whitespace rune, including the non-breaking and
// narrow non-breaking spaces used as digit-group separators in French.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.Is(unicode.Zs, r) {
			return -1
		}
		return r
	}, s)
}

// ParseDecimal parses a number written with French or English separators:
// "1 000,50", "1.000,50", "1,000.50", "0,085" and "1000" are accepted.
//
// Spaces are digit-group separators. When both '.' and ',' appear the
// rightmost one is the decimal separator. A lone separator kind is decimal
// if it appears once and a thousands separator otherwise.
func ParseDecimal(s string) (float64, error) {
	s = strings.Trim(stripSpaces(s), ".,")
	if s == "" {
		return 0, errEmptyNumber
	}

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")

	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case dot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return 0, fmt.Errorf("parsing %q: %w", s, strconv.ErrSyntax)
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return f, nil
}

// ParseInteger parses a whole number after removing digit-group spaces.
// "1 250" gives 1250; anything left that is not a digit is an error.
func ParseInteger(s string) (int64, error) {
	s = stripSpaces(s)
	if s == "" {
		return 0, errEmptyNumber
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("parsing %q: %w", s, strconv.ErrSyntax)
		}
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return i, nil
}
