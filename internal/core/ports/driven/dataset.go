package driven

import (
	"context"
	"io"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// DatasetWriter serialises an assembled dataset.
type DatasetWriter interface {
	// Format returns the format identifier (e.g. "csv").
	Format() string

	// Write encodes ds to w.
	Write(ctx context.Context, w io.Writer, ds *domain.Dataset) error
}

// DatasetReader decodes a delimited table written by a DatasetWriter or by
// an enrichment stage.
type DatasetReader interface {
	// Read decodes a table. A structurally malformed table returns an error
	// wrapping domain.ErrMalformedTable; it never panics.
	Read(ctx context.Context, r io.Reader, name string) (*domain.Dataset, error)
}
