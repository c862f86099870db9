package driven

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// RecordProcessor is one normalisation stage applied to a partial record.
// Processors are chained in a pipeline (default fill, unit conversion).
type RecordProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process modifies the record in place. Applying a processor twice
	// must give the same record as applying it once.
	Process(ctx context.Context, rec *domain.Record) error
}

// RecordPipeline chains multiple RecordProcessors.
type RecordPipeline interface {
	// Process runs the record through all processors in order.
	Process(ctx context.Context, rec *domain.Record) error
}
