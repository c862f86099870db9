// Package normalisers provides text preparation for raw documents.
// A normaliser decodes the bytes read by a document source and applies the
// minimal whitespace clean-up expected by the extraction rules.
package normalisers
