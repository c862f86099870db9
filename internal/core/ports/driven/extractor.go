package driven

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// FieldExtractor applies an ordered rule set to one document.
type FieldExtractor interface {
	// Extract returns the partial record for doc. Pattern misses are not
	// reported; each omitted rule group whose derivation failed is returned
	// as a *domain.FieldError alongside the record.
	Extract(ctx context.Context, doc *domain.Document) (*domain.Record, []error)

	// Fields returns every field the rule set can produce, in rule order.
	Fields() []string
}
