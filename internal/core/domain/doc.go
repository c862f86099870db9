// Package domain defines the core entities of the crowd-lending extraction engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Bytes read from one project page dump
//   - Document: Prepared text ready for field extraction
//   - Value: A typed cell (text, integer or float)
//   - Record: Ordered field/value mapping for one document
//   - Dataset: Rectangular table assembled from many records
//   - Run: History entry for one extraction batch
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
