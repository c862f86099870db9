package driving

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// DatasetService loads, enriches and saves delimited tables.
type DatasetService interface {
	// Load reads a table and infers column types.
	Load(ctx context.Context, path string) (*domain.Dataset, error)

	// Save writes a table in the given format.
	Save(ctx context.Context, ds *domain.Dataset, path, format string) error

	// Enrich appends one derived column per enricher for the source column.
	// Enricher names must be registered with the service.
	Enrich(ctx context.Context, ds *domain.Dataset, column string, enrichers ...string) error

	// Enrichers lists the registered enricher names.
	Enrichers() []string
}
