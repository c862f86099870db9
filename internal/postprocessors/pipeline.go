// Package postprocessors provides the record normalisation stages applied
// between field extraction and dataset assembly.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
)

// Verify interface compliance at compile time.
var _ driven.RecordPipeline = (*Pipeline)(nil)

// Pipeline chains multiple RecordProcessors and runs them in order.
// It implements the RecordPipeline interface.
type Pipeline struct {
	processors []driven.RecordProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.RecordProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the record through all processors in order.
// Each processor sees the record as left by the previous one.
func (p *Pipeline) Process(ctx context.Context, rec *domain.Record) error {
	if rec == nil {
		return fmt.Errorf("record is nil")
	}

	for _, processor := range p.processors {
		if err := processor.Process(ctx, rec); err != nil {
			return fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}

	return nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.RecordProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}

// Names returns the processor names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.processors))
	for i, processor := range p.processors {
		names[i] = processor.Name()
	}
	return names
}
