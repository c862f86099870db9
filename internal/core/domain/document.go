package domain

// RawDocument represents the bytes of one project page dump as read by a
// document source. It is the source's output before text preparation.
type RawDocument struct {
	// URI is the original location (file path).
	URI string

	// Name is the identifier derived from the file name.
	Name string

	// MIMEType is the content type reported by the source.
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}

// Document is a prepared document. Immutable once built: extraction reads
// Content and never writes back.
type Document struct {
	// URI is the original location (file path).
	URI string

	// Name is the identifier derived from the file name. It becomes the
	// file_name column of the dataset.
	Name string

	// Content is the text after blank-line collapsing.
	Content string
}

// ChangeType represents the type of document change.
type ChangeType int

const (
	// ChangeCreated indicates a new document.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified document.
	ChangeUpdated

	// ChangeDeleted indicates a removed document.
	ChangeDeleted
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// RawDocumentChange represents a change event emitted while watching a source.
type RawDocumentChange struct {
	// Type is the kind of change.
	Type ChangeType

	// Document is the affected document. Content is empty for deletions.
	Document RawDocument
}

// DiscoveryOptions controls which documents a source yields.
type DiscoveryOptions struct {
	// SkipHidden excludes dot-files and files below dot-directories.
	SkipHidden bool

	// Extensions restricts discovery to these file extensions (without dot).
	// Empty means every regular file.
	Extensions []string

	// Limit caps the number of discovered documents. Zero means no limit.
	Limit int

	// Exclude, when set, drops matching paths before they count towards
	// Limit.
	Exclude func(path string) bool
}
