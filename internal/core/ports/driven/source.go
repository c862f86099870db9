package driven

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// DocumentSource discovers and reads project page dumps.
type DocumentSource interface {
	// Root returns the location the source reads from.
	Root() string

	// Validate checks the source is readable before a run starts.
	Validate(ctx context.Context) error

	// FullSync yields every document in discovery order.
	// Unreadable documents are reported on the error channel as
	// *domain.ReadError and do not stop the walk. Both channels are closed
	// once discovery ends.
	FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error)

	// Watch emits change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error)

	// Close releases resources.
	Close() error
}

// SourceFactory opens document sources.
type SourceFactory interface {
	// Open creates a source rooted at root.
	Open(root string, opts domain.DiscoveryOptions) (DocumentSource, error)
}
