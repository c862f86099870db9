// Package units provides the processors that fold a value and its unit
// field into a single canonical number: loan durations in months and
// financing durations in minutes.
//
// Both processors delete the unit field once the value is canonical, so a
// second pass finds no unit and leaves the value unchanged.
package units

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/extractors/rules"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
)

// DurationName is the registry name of the loan duration processor.
const DurationName = "duration"

// monthsPerYear converts a duration stated in years.
const monthsPerYear = 12

// Verify interface compliance at compile time.
var _ driven.RecordProcessor = (*Duration)(nil)

// Duration canonicalises the loan duration to a whole number of months.
type Duration struct{}

// NewDuration creates a loan duration processor.
func NewDuration() *Duration {
	return &Duration{}
}

// Name returns the processor name.
func (d *Duration) Name() string {
	return DurationName
}

// Process converts the duration value to months and drops the unit field.
// Values that are not whole numbers fall back to the default duration.
func (d *Duration) Process(_ context.Context, rec *domain.Record) error {
	if rec == nil {
		return domain.ErrInvalidInput
	}

	unit, hasUnit := rec.Get(domain.FieldDurationUnit)
	rec.Delete(domain.FieldDurationUnit)

	raw, ok := rec.Get(domain.FieldDurationValue)
	if !ok {
		return nil
	}

	months, ok := wholeNumber(raw)
	if !ok {
		logger.Warn("duration %q is not a whole number, using %d", raw.String(), domain.DurationValueDefault)
		rec.Set(domain.FieldDurationValue, domain.IntValue(domain.DurationValueDefault))
		return nil
	}

	if hasUnit && unit.Text() == domain.DurationUnitYears {
		months *= monthsPerYear
	}
	rec.Set(domain.FieldDurationValue, domain.IntValue(months))
	return nil
}

func wholeNumber(v domain.Value) (int64, bool) {
	if n, ok := v.Int(); ok {
		return n, true
	}
	if v.Kind() != domain.KindString {
		return 0, false
	}
	n, err := rules.ParseInteger(v.Text())
	if err != nil {
		return 0, false
	}
	return n, true
}
