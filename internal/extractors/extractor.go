// Package extractors turns prepared document text into partial records by
// running a rule table over it.
package extractors

import (
	"context"
	"errors"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/extractors/rules"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
)

// Verify interface compliance at compile time.
var _ driven.FieldExtractor = (*Extractor)(nil)

// Extractor applies every rule of its table to a document, independently.
type Extractor struct {
	rules []rules.Rule
}

// New creates an extractor. With no rules it uses the default layout table.
func New(rs ...rules.Rule) *Extractor {
	if len(rs) == 0 {
		rs = rules.Default()
	}
	return &Extractor{rules: rs}
}

// Extract runs all rules against the document content.
//
// A rule that does not match contributes nothing. A rule that matched but
// failed to convert contributes nothing and its error is returned alongside
// the record; extraction never stops early on a bad field.
func (e *Extractor) Extract(ctx context.Context, doc *domain.Document) (*domain.Record, []error) {
	rec := domain.NewRecord()
	if doc == nil {
		return rec, []error{domain.ErrInvalidInput}
	}

	var errs []error
	for _, r := range e.rules {
		if err := ctx.Err(); err != nil {
			return rec, append(errs, err)
		}

		fields, err := r.Apply(doc.Content)
		switch {
		case errors.Is(err, domain.ErrNoMatch):
			logger.Debug("%s: rule %s did not match", doc.Name, r.Name())
			continue
		case err != nil:
			logger.Debug("%s: %v", doc.Name, err)
			errs = append(errs, err)
			continue
		}

		for _, f := range fields {
			rec.Set(f.Name, f.Value)
		}
	}

	return rec, errs
}

// Fields lists every field the rule table can produce, in table order.
func (e *Extractor) Fields() []string {
	return rules.FieldNames(e.rules)
}
