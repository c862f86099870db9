// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for extraction to run:
//
//   - DocumentSource: Discovers and reads project page dumps
//   - SourceFactory: Opens a DocumentSource for a root directory
//   - TextPreparer: Turns raw bytes into prepared text
//   - FieldExtractor: Applies the rule set to prepared text
//   - RecordPipeline: Default fill and unit canonicalisation
//   - DatasetWriter: Serialises the assembled table
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Run history. Without it runs are not recorded.
//   - ConfigStore: Application configuration. Without it defaults apply.
//   - Enricher: Column enrichment stages for DatasetService.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
