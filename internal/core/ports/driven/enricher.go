package driven

import "context"

// Enricher derives a new column from a text column of the dataset.
// Enrichment is additive: the derived column is named
// "<source column>_<Suffix()>" and existing columns are never modified.
// Translation, sentiment or question-answering stages plug in here.
type Enricher interface {
	// Name identifies the enricher in configuration and logs.
	Name() string

	// Suffix is appended to the source column name.
	Suffix() string

	// Enrich derives the new cell from one non-empty source cell.
	Enrich(ctx context.Context, text string) (string, error)
}
