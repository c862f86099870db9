// Package memory provides in-memory implementations of driven storage ports.
// They back the CLI when the run history database cannot be opened, and
// service tests.
package memory
