package units

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/extractors/rules"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
)

// FinancingName is the registry name of the financing duration processor.
const FinancingName = "financing_duration"

// minutesPer maps a financing unit to its length in minutes.
var minutesPer = map[string]float64{
	domain.FinancingUnitMinutes: 1,
	domain.FinancingUnitHours:   60,
	domain.FinancingUnitDays:    24 * 60,
}

// Verify interface compliance at compile time.
var _ driven.RecordProcessor = (*Financing)(nil)

// Financing canonicalises the time taken to fund a project to minutes.
type Financing struct{}

// NewFinancing creates a financing duration processor.
func NewFinancing() *Financing {
	return &Financing{}
}

// Name returns the processor name.
func (f *Financing) Name() string {
	return FinancingName
}

// Process converts the financing value to minutes and drops the unit field.
//
// The not-applicable marker is never converted. A value that cannot be read
// as a number, or a unit outside the vocabulary, becomes the marker.
func (f *Financing) Process(_ context.Context, rec *domain.Record) error {
	if rec == nil {
		return domain.ErrInvalidInput
	}

	unit, hasUnit := rec.Get(domain.FieldFinancingUnit)
	rec.Delete(domain.FieldFinancingUnit)

	raw, ok := rec.Get(domain.FieldFinancingValue)
	if !ok {
		return nil
	}

	value, ok := decimal(raw)
	if !ok {
		logger.Warn("financing duration %q is not a number, marking as not applicable", raw.String())
		rec.Set(domain.FieldFinancingValue, domain.FloatValue(domain.FinancingNotApplicable))
		return nil
	}

	if value == domain.FinancingNotApplicable || !hasUnit {
		rec.Set(domain.FieldFinancingValue, domain.FloatValue(value))
		return nil
	}

	factor, known := minutesPer[unit.Text()]
	if !known {
		logger.Warn("unknown financing unit %q, marking as not applicable", unit.Text())
		rec.Set(domain.FieldFinancingValue, domain.FloatValue(domain.FinancingNotApplicable))
		return nil
	}

	rec.Set(domain.FieldFinancingValue, domain.FloatValue(value*factor))
	return nil
}

func decimal(v domain.Value) (float64, bool) {
	if f, ok := v.Float(); ok {
		return f, true
	}
	if v.Kind() != domain.KindString {
		return 0, false
	}
	f, err := rules.ParseDecimal(v.Text())
	if err != nil {
		return 0, false
	}
	return f, true
}
