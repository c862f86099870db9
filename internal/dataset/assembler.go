// Package dataset assembles normalised records into a rectangular table
// and infers numeric column types once every record is known.
package dataset

import (
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// Assembler turns records into a dataset with a consistent schema.
type Assembler struct {
	schema   []string
	textOnly []string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithTextColumns exempts columns from numeric inference, so codes keep
// their leading zeros.
func WithTextColumns(names ...string) Option {
	return func(a *Assembler) {
		a.textOnly = append(a.textOnly, names...)
	}
}

// NewAssembler creates an assembler. schema gives the preferred column
// order; columns never produced by any record are left out.
func NewAssembler(schema []string, opts ...Option) *Assembler {
	a := &Assembler{schema: schema}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds one row per record, in order.
//
// Columns are the union of record keys: schema columns first, then any
// other key in order of first appearance. A field missing from a record is
// written as "N/A". The inference pass runs once on the result.
func (a *Assembler) Assemble(records []*domain.Record) *domain.Dataset {
	columns := a.columns(records)

	ds := &domain.Dataset{
		Columns: make([]domain.Column, len(columns)),
		Rows:    make([][]domain.Value, 0, len(records)),
	}
	for i, name := range columns {
		ds.Columns[i] = domain.Column{Name: name, Type: domain.ColumnText}
	}

	for _, rec := range records {
		row := make([]domain.Value, len(columns))
		for i, name := range columns {
			v, ok := rec.Get(name)
			if !ok {
				v = domain.StringValue(domain.NotAvailable)
			}
			row[i] = v
		}
		ds.Rows = append(ds.Rows, row)
	}

	Infer(ds, a.textOnly...)
	return ds
}

func (a *Assembler) columns(records []*domain.Record) []string {
	seen := make(map[string]bool)
	var extra []string
	for _, rec := range records {
		for _, name := range rec.Fields() {
			if !seen[name] {
				seen[name] = true
				extra = append(extra, name)
			}
		}
	}

	columns := make([]string, 0, len(seen))
	inSchema := make(map[string]bool, len(a.schema))
	for _, name := range a.schema {
		if seen[name] && !inSchema[name] {
			columns = append(columns, name)
		}
		inSchema[name] = true
	}
	for _, name := range extra {
		if !inSchema[name] {
			columns = append(columns, name)
		}
	}
	return columns
}
