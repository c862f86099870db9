package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// Infer sets the type of every column. A column becomes numeric only if
// every one of its cells converts cleanly: integer when all cells are whole
// numbers written without a decimal point, float otherwise. Any other
// column is text and its cells are rendered as strings. Infer never fails.
//
// Columns named in textOnly are always text.
func Infer(ds *domain.Dataset, textOnly ...string) {
	skip := make(map[string]bool, len(textOnly))
	for _, name := range textOnly {
		skip[name] = true
	}

	for col := range ds.Columns {
		typ := domain.ColumnText
		if !skip[ds.Columns[col].Name] && ds.Len() > 0 {
			typ = inferColumn(ds, col)
		}
		ds.Columns[col].Type = typ

		for _, row := range ds.Rows {
			row[col] = coerce(row[col], typ)
		}
	}
}

func inferColumn(ds *domain.Dataset, col int) domain.ColumnType {
	typ := domain.ColumnInteger
	for _, row := range ds.Rows {
		switch cellType(row[col]) {
		case domain.ColumnText:
			return domain.ColumnText
		case domain.ColumnFloat:
			typ = domain.ColumnFloat
		}
	}
	return typ
}

// cellType reports the narrowest numeric type v converts to, or ColumnText.
func cellType(v domain.Value) domain.ColumnType {
	switch v.Kind() {
	case domain.KindInt:
		return domain.ColumnInteger
	case domain.KindFloat:
		return domain.ColumnFloat
	}
	s := strings.TrimSpace(v.Text())
	if _, ok := parseInt(s); ok {
		return domain.ColumnInteger
	}
	if _, ok := parseFloat(s); ok {
		return domain.ColumnFloat
	}
	return domain.ColumnText
}

func coerce(v domain.Value, typ domain.ColumnType) domain.Value {
	switch typ {
	case domain.ColumnInteger:
		if n, ok := v.Int(); ok {
			return domain.IntValue(n)
		}
		n, _ := parseInt(strings.TrimSpace(v.Text()))
		return domain.IntValue(n)
	case domain.ColumnFloat:
		if f, ok := v.Float(); ok {
			return domain.FloatValue(f)
		}
		s := strings.TrimSpace(v.Text())
		if n, ok := parseInt(s); ok {
			return domain.FloatValue(float64(n))
		}
		f, _ := parseFloat(s)
		return domain.FloatValue(f)
	default:
		if v.Kind() == domain.KindString {
			return v
		}
		return domain.StringValue(v.String())
	}
}

func parseInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

// parseFloat accepts plain decimal notation with an optional exponent.
// Spellings such as "nan", "inf" or hexadecimal floats stay text.
func parseFloat(s string) (float64, bool) {
	if s == "" || strings.Trim(s, "0123456789+-.eE") != "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
