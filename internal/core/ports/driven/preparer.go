package driven

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// TextPreparer turns raw bytes into prepared text ready for extraction.
type TextPreparer interface {
	// Prepare decodes and normalises a raw document.
	// Undecodable content returns an error wrapping domain.ErrUnreadableDocument.
	Prepare(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
