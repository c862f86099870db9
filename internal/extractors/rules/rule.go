// Package rules defines the closed set of field rule shapes used to read
// crowd-lending project pages, and the rule table for the supported layout.
//
// Every rule searches the whole document independently of the others. A rule
// with several captures decomposes atomically: it yields all of its fields or
// none of them.
package rules

import (
	"errors"
	"regexp"
	"strings"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// Field is one derived field produced by a rule.
type Field struct {
	Name  string
	Value domain.Value
}

// Rule is one entry of the rule table. Implementations are limited to the
// shapes declared in this package.
type Rule interface {
	// Name identifies the rule in logs and errors.
	Name() string

	// Fields lists the fields the rule yields, in order.
	Fields() []string

	// Apply searches text. It returns domain.ErrNoMatch when the pattern is
	// absent, and a *domain.FieldError when the pattern matched but a
	// sub-transform failed. Fields are only returned on full success.
	Apply(text string) ([]Field, error)

	sealed()
}

type base struct {
	name    string
	pattern *regexp.Regexp
}

func (b base) Name() string { return b.name }

func (base) sealed() {}

func (b base) match(text string) ([]string, error) {
	m := b.pattern.FindStringSubmatch(text)
	if m == nil {
		return nil, domain.ErrNoMatch
	}
	return m[1:], nil
}

func (b base) fail(fields []string, err error) error {
	return &domain.FieldError{Rule: b.name, Fields: fields, Err: err}
}

var errEmptyCapture = errors.New("empty capture")

// ScalarRule yields one trimmed text field from the first capture.
type ScalarRule struct {
	base
	Field string
}

// Scalar creates a ScalarRule.
func Scalar(name, pattern, field string) *ScalarRule {
	return &ScalarRule{base: base{name, regexp.MustCompile(pattern)}, Field: field}
}

// Fields returns the field produced by the rule.
func (r *ScalarRule) Fields() []string { return []string{r.Field} }

// Apply runs the rule against text.
func (r *ScalarRule) Apply(text string) ([]Field, error) {
	m, err := r.match(text)
	if err != nil {
		return nil, err
	}
	v := strings.TrimSpace(m[0])
	if v == "" {
		return nil, r.fail(r.Fields(), errEmptyCapture)
	}
	return []Field{{r.Field, domain.StringValue(v)}}, nil
}

// IntegerRule yields one integer field. Digit-group spaces are removed
// before conversion.
type IntegerRule struct {
	base
	Field string
}

// Integer creates an IntegerRule.
func Integer(name, pattern, field string) *IntegerRule {
	return &IntegerRule{base: base{name, regexp.MustCompile(pattern)}, Field: field}
}

// Fields returns the field produced by the rule.
func (r *IntegerRule) Fields() []string { return []string{r.Field} }

// Apply runs the rule against text.
func (r *IntegerRule) Apply(text string) ([]Field, error) {
	m, err := r.match(text)
	if err != nil {
		return nil, err
	}
	n, err := ParseInteger(m[0])
	if err != nil {
		return nil, r.fail(r.Fields(), err)
	}
	return []Field{{r.Field, domain.IntValue(n)}}, nil
}

// RateRule yields a percentage converted to a fraction: "8,5" gives 0.085.
type RateRule struct {
	base
	Field string
}

// Rate creates a RateRule.
func Rate(name, pattern, field string) *RateRule {
	return &RateRule{base: base{name, regexp.MustCompile(pattern)}, Field: field}
}

// Fields returns the field produced by the rule.
func (r *RateRule) Fields() []string { return []string{r.Field} }

// Apply runs the rule against text.
func (r *RateRule) Apply(text string) ([]Field, error) {
	m, err := r.match(text)
	if err != nil {
		return nil, err
	}
	pct, err := ParseDecimal(m[0])
	if err != nil {
		return nil, r.fail(r.Fields(), err)
	}
	return []Field{{r.Field, domain.FloatValue(pct / 100)}}, nil
}

// ValueUnitRule yields a value with its spaces removed and the raw unit
// token. Units are converted later by the record pipeline.
type ValueUnitRule struct {
	base
	ValueField string
	UnitField  string
}

// ValueUnit creates a ValueUnitRule. The pattern needs two captures.
func ValueUnit(name, pattern, valueField, unitField string) *ValueUnitRule {
	return &ValueUnitRule{
		base:       base{name, regexp.MustCompile(pattern)},
		ValueField: valueField,
		UnitField:  unitField,
	}
}

// Fields returns the fields produced by the rule.
func (r *ValueUnitRule) Fields() []string { return []string{r.ValueField, r.UnitField} }

// Apply runs the rule against text.
func (r *ValueUnitRule) Apply(text string) ([]Field, error) {
	m, err := r.match(text)
	if err != nil {
		return nil, err
	}
	value := stripSpaces(m[0])
	if value == "" || m[1] == "" {
		return nil, r.fail(r.Fields(), errEmptyCapture)
	}
	return []Field{
		{r.ValueField, domain.StringValue(value)},
		{r.UnitField, domain.StringValue(m[1])},
	}, nil
}

// AmountPairRule yields two decimal amounts, e.g. raised / requested.
type AmountPairRule struct {
	base
	FirstField  string
	SecondField string
}

// AmountPair creates an AmountPairRule. The pattern needs two captures.
func AmountPair(name, pattern, firstField, secondField string) *AmountPairRule {
	return &AmountPairRule{
		base:        base{name, regexp.MustCompile(pattern)},
		FirstField:  firstField,
		SecondField: secondField,
	}
}

// Fields returns the fields produced by the rule.
func (r *AmountPairRule) Fields() []string { return []string{r.FirstField, r.SecondField} }

// Apply runs the rule against text.
func (r *AmountPairRule) Apply(text string) ([]Field, error) {
	m, err := r.match(text)
	if err != nil {
		return nil, err
	}
	first, err := ParseDecimal(m[0])
	if err != nil {
		return nil, r.fail(r.Fields(), err)
	}
	second, err := ParseDecimal(m[1])
	if err != nil {
		return nil, r.fail(r.Fields(), err)
	}
	return []Field{
		{r.FirstField, domain.FloatValue(first)},
		{r.SecondField, domain.FloatValue(second)},
	}, nil
}

// YearValueRule yields a year and a decimal value, e.g. turnover for a
// fiscal year.
type YearValueRule struct {
	base
	YearField  string
	ValueField string
}

// YearValue creates a YearValueRule. The pattern captures the year first.
func YearValue(name, pattern, yearField, valueField string) *YearValueRule {
	return &YearValueRule{
		base:       base{name, regexp.MustCompile(pattern)},
		YearField:  yearField,
		ValueField: valueField,
	}
}

// Fields returns the fields produced by the rule.
func (r *YearValueRule) Fields() []string { return []string{r.YearField, r.ValueField} }

// Apply runs the rule against text.
func (r *YearValueRule) Apply(text string) ([]Field, error) {
	m, err := r.match(text)
	if err != nil {
		return nil, err
	}
	year, err := ParseInteger(m[0])
	if err != nil {
		return nil, r.fail(r.Fields(), err)
	}
	value, err := ParseDecimal(m[1])
	if err != nil {
		return nil, r.fail(r.Fields(), err)
	}
	return []Field{
		{r.YearField, domain.IntValue(year)},
		{r.ValueField, domain.FloatValue(value)},
	}, nil
}

// LocationRule yields a trimmed city and a department code. The code is
// kept as text: "01" is a code, not the number one.
type LocationRule struct {
	base
	CityField string
	CodeField string
}

// Location creates a LocationRule. The pattern captures the city first.
func Location(name, pattern, cityField, codeField string) *LocationRule {
	return &LocationRule{
		base:      base{name, regexp.MustCompile(pattern)},
		CityField: cityField,
		CodeField: codeField,
	}
}

// Fields returns the fields produced by the rule.
func (r *LocationRule) Fields() []string { return []string{r.CityField, r.CodeField} }

// Apply runs the rule against text.
func (r *LocationRule) Apply(text string) ([]Field, error) {
	m, err := r.match(text)
	if err != nil {
		return nil, err
	}
	city := strings.TrimSpace(m[0])
	if city == "" || m[1] == "" {
		return nil, r.fail(r.Fields(), errEmptyCapture)
	}
	return []Field{
		{r.CityField, domain.StringValue(city)},
		{r.CodeField, domain.StringValue(m[1])},
	}, nil
}

// LinePositionRule yields one line, at a fixed offset, of the captured block.
//
// The offset encodes the page layout. When the layout drifts and the block
// is too short the field is omitted and reported as a derivation failure.
type LinePositionRule struct {
	base
	Field string
	Line  int
}

// LinePosition creates a LinePositionRule. line is zero-based.
func LinePosition(name, pattern, field string, line int) *LinePositionRule {
	return &LinePositionRule{
		base:  base{name, regexp.MustCompile(pattern)},
		Field: field,
		Line:  line,
	}
}

var errLineOutOfRange = errors.New("line offset out of range")

// Fields returns the field produced by the rule.
func (r *LinePositionRule) Fields() []string { return []string{r.Field} }

// Apply runs the rule against text.
func (r *LinePositionRule) Apply(text string) ([]Field, error) {
	m, err := r.match(text)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimSpace(m[0]), "\n")
	if r.Line < 0 || r.Line >= len(lines) {
		return nil, r.fail(r.Fields(), errLineOutOfRange)
	}
	line := strings.TrimSpace(lines[r.Line])
	if line == "" {
		return nil, r.fail(r.Fields(), errEmptyCapture)
	}
	return []Field{{r.Field, domain.StringValue(line)}}, nil
}

// SpanSplitRule splits the span between two markers into a heading (its
// first line) and a body (the remaining lines, trimmed, newline-joined).
type SpanSplitRule struct {
	base
	HeadField string
	BodyField string
}

// SpanSplit creates a SpanSplitRule. The pattern captures the span.
func SpanSplit(name, pattern, headField, bodyField string) *SpanSplitRule {
	return &SpanSplitRule{
		base:      base{name, regexp.MustCompile(pattern)},
		HeadField: headField,
		BodyField: bodyField,
	}
}

// Fields returns the fields produced by the rule.
func (r *SpanSplitRule) Fields() []string { return []string{r.HeadField, r.BodyField} }

// Apply runs the rule against text.
func (r *SpanSplitRule) Apply(text string) ([]Field, error) {
	m, err := r.match(text)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimSpace(m[0]), "\n")
	head := strings.TrimSpace(lines[0])
	if head == "" {
		return nil, r.fail(r.Fields(), errEmptyCapture)
	}
	body := make([]string, 0, len(lines)-1)
	for _, l := range lines[1:] {
		body = append(body, strings.TrimSpace(l))
	}
	return []Field{
		{r.HeadField, domain.StringValue(head)},
		{r.BodyField, domain.StringValue(strings.Join(body, "\n"))},
	}, nil
}
