// Package export holds the dataset writers and readers.
//
// Subpackages:
//   - csv: semicolon-separated UTF-8 tables, read and write
//   - xlsx: single-sheet workbooks, write only
package export
