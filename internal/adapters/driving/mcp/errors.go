// Package mcp provides an MCP (Model Context Protocol) server adapter for crowdlend.
// It lets AI assistants run extractions and read the run history.
package mcp

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("mcp: extraction service is required")
