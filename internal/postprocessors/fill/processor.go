// Package fill provides the processor that writes default values for the
// loan duration, financing duration and risk level fields when a page does
// not state them.
package fill

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
)

// Name is the registry name of the processor.
const Name = "defaults"

// Verify interface compliance at compile time.
var _ driven.RecordProcessor = (*Processor)(nil)

// Processor fills missing fields with their policy defaults. A field is
// missing when it is absent, blank, or holds the generic "N/A" marker.
type Processor struct {
	risk string
}

// Option configures the fill processor.
type Option func(*Processor)

// WithRiskPlaceholder sets the value written when no risk level was found.
func WithRiskPlaceholder(risk string) Option {
	return func(p *Processor) {
		if risk != "" {
			p.risk = risk
		}
	}
}

// New creates a new fill processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{risk: domain.RiskNotClassified}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process writes the defaults into rec.
func (p *Processor) Process(_ context.Context, rec *domain.Record) error {
	if rec == nil {
		return domain.ErrInvalidInput
	}

	setIfMissing(rec, domain.FieldDurationUnit, domain.StringValue(domain.DurationUnitMonths))
	setIfMissing(rec, domain.FieldDurationValue, domain.IntValue(domain.DurationValueDefault))
	setIfMissing(rec, domain.FieldFinancingUnit, domain.StringValue(domain.FinancingUnitNotClassified))
	setIfMissing(rec, domain.FieldFinancingValue, domain.FloatValue(domain.FinancingNotApplicable))
	setIfMissing(rec, domain.FieldRiskLevel, domain.StringValue(p.risk))

	return nil
}

func setIfMissing(rec *domain.Record, field string, v domain.Value) {
	if cur, ok := rec.Get(field); ok && !domain.IsPlaceholder(cur) {
		return
	}
	rec.Set(field, v)
}
