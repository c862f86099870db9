package mcp

import (
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extraction runs the extraction pipeline.
	Extraction driving.ExtractionService

	// Runs exposes the run history. Optional.
	Runs driving.RunService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	return nil
}
