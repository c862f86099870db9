package domain

import "time"

// Output formats supported by the dataset writers.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// DefaultDescriptionLine is the zero-based line of the first "| ..." block
// holding the project description. The page layout puts the short pitch
// there; when the block is shorter the description is omitted.
const DefaultDescriptionLine = 4

// Settings holds the user-tunable extraction parameters.
type Settings struct {
	// DescriptionLine is the line offset used by the description rule.
	DescriptionLine int

	// SkipHidden excludes hidden files from discovery.
	SkipHidden bool

	// Extensions restricts discovery. Empty means every file.
	Extensions []string

	// OutputPath is the default table location.
	OutputPath string

	// OutputFormat is csv or xlsx. Empty derives it from OutputPath.
	OutputFormat string

	// Processors names the record pipeline stages, in order.
	Processors []string

	// WatchInterval is the minimum delay between two watch-triggered runs.
	WatchInterval time.Duration
}

// DefaultSettings returns the settings used when no configuration exists.
func DefaultSettings() Settings {
	return Settings{
		DescriptionLine: DefaultDescriptionLine,
		SkipHidden:      true,
		OutputPath:      "project_data.csv",
		Processors:      []string{"defaults", "duration", "financing_duration"},
		WatchInterval:   2 * time.Second,
	}
}
