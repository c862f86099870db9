// Package report writes run summaries as YAML documents.
package report

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
)

// Verify interface compliance at compile time.
var _ driven.ReportWriter = (*YAMLWriter)(nil)

type runReport struct {
	ID         string          `yaml:"id"`
	Status     string          `yaml:"status"`
	Root       string          `yaml:"root"`
	Output     string          `yaml:"output,omitempty"`
	Format     string          `yaml:"format,omitempty"`
	StartedAt  time.Time       `yaml:"started_at"`
	FinishedAt time.Time       `yaml:"finished_at,omitempty"`
	Duration   string          `yaml:"duration"`
	Documents  documentCounts  `yaml:"documents"`
	Table      tableShape      `yaml:"table"`
	Checksum   string          `yaml:"checksum,omitempty"`
	Error      string          `yaml:"error,omitempty"`
	Outcomes   []outcomeReport `yaml:"outcomes,omitempty"`
}

type documentCounts struct {
	Seen        int `yaml:"seen"`
	Extracted   int `yaml:"extracted"`
	Skipped     int `yaml:"skipped"`
	FieldErrors int `yaml:"field_errors"`
}

type tableShape struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

type outcomeReport struct {
	Name        string `yaml:"name"`
	URI         string `yaml:"uri"`
	Status      string `yaml:"status"`
	Fields      int    `yaml:"fields"`
	FieldErrors int    `yaml:"field_errors,omitempty"`
	Message     string `yaml:"message,omitempty"`
}

// YAMLWriter renders a run and its per-document outcomes.
type YAMLWriter struct{}

// NewYAMLWriter creates a YAML report writer.
func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{}
}

// Write encodes the report to w.
func (y *YAMLWriter) Write(w io.Writer, run *domain.Run, outcomes []domain.DocumentOutcome) error {
	if run == nil {
		return domain.ErrInvalidInput
	}

	rep := runReport{
		ID:         run.ID,
		Status:     string(run.Status),
		Root:       run.Root,
		Output:     run.Output,
		Format:     run.Format,
		StartedAt:  run.StartedAt.UTC(),
		FinishedAt: run.FinishedAt.UTC(),
		Duration:   run.Duration().Round(time.Millisecond).String(),
		Documents: documentCounts{
			Seen:        run.DocumentsSeen,
			Extracted:   run.DocumentsExtracted,
			Skipped:     run.DocumentsSkipped,
			FieldErrors: run.FieldErrors,
		},
		Table:    tableShape{Rows: run.Rows, Columns: run.Columns},
		Checksum: run.Checksum,
		Error:    run.Error,
	}
	for _, o := range outcomes {
		rep.Outcomes = append(rep.Outcomes, outcomeReport{
			Name:        o.Name,
			URI:         o.URI,
			Status:      string(o.Status),
			Fields:      o.Fields,
			FieldErrors: o.FieldErrors,
			Message:     o.Message,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
