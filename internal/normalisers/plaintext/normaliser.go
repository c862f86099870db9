// Package plaintext prepares plain text project page dumps for extraction.
package plaintext

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TextPreparer = (*Normaliser)(nil)

// blankLines matches a newline, optional whitespace (including non-breaking
// spaces left by copy-paste from a browser), then another newline.
var blankLines = regexp.MustCompile(`\n[\s\p{Zs}]*\n`)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normaliser decodes UTF-8 text and collapses blank-line runs.
// Case, accents and punctuation are left untouched: the extraction rules
// match on the original casing and diacritics.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Prepare converts a raw document into a prepared document.
func (n *Normaliser) Prepare(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := bytes.TrimPrefix(raw.Content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, &domain.ReadError{URI: raw.URI, Err: fmt.Errorf("content is not valid UTF-8")}
	}

	name := raw.Name
	if name == "" {
		name = filepath.Base(raw.URI)
	}

	return &domain.Document{
		URI:     raw.URI,
		Name:    name,
		Content: CollapseBlankLines(string(content)),
	}, nil
}

// CollapseBlankLines replaces every run of blank lines with a single newline.
func CollapseBlankLines(text string) string {
	return blankLines.ReplaceAllString(text, "\n")
}
