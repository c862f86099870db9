// Package wordcount provides a deterministic enricher that counts the words
// of a text cell.
package wordcount

import (
	"context"
	"strconv"
	"strings"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
)

// Name is the enricher name used in configuration and on the command line.
const Name = "wordcount"

// Suffix is appended to the source column name.
const Suffix = "word_count"

// Ensure Enricher implements the interface.
var _ driven.Enricher = (*Enricher)(nil)

// Enricher counts whitespace-separated words.
type Enricher struct{}

// New creates a word count enricher.
func New() *Enricher {
	return &Enricher{}
}

// Name returns the enricher name.
func (e *Enricher) Name() string { return Name }

// Suffix returns the derived column suffix.
func (e *Enricher) Suffix() string { return Suffix }

// Enrich returns the number of words in text.
func (e *Enricher) Enrich(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return strconv.Itoa(len(strings.Fields(text))), nil
}
