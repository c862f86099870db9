// Package csv reads and writes datasets as semicolon-separated UTF-8 tables.
package csv

import (
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/dataset"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
)

// Separator is the field delimiter of every table.
const Separator = ';'

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Verify interface compliance at compile time.
var (
	_ driven.DatasetWriter = (*Writer)(nil)
	_ driven.DatasetReader = (*Reader)(nil)
)

// Writer encodes datasets with a header row and one line per row.
type Writer struct{}

// NewWriter creates a CSV writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns "csv".
func (w *Writer) Format() string {
	return domain.FormatCSV
}

// Write encodes ds to out. Numbers use their canonical rendering, so
// writing a dataset read back from the same table gives identical bytes.
func (w *Writer) Write(ctx context.Context, out io.Writer, ds *domain.Dataset) error {
	if ds == nil {
		return domain.ErrInvalidInput
	}

	cw := stdcsv.NewWriter(out)
	cw.Comma = Separator

	if err := cw.Write(ds.ColumnNames()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	line := make([]string, len(ds.Columns))
	for i, row := range ds.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, v := range row {
			line[j] = v.String()
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Reader decodes tables. By default any structural problem aborts the load.
type Reader struct {
	skipMalformed bool
	textColumns   []string
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithSkipMalformed drops rows whose field count differs from the header
// instead of failing. Quoting errors still abort.
func WithSkipMalformed() ReaderOption {
	return func(r *Reader) {
		r.skipMalformed = true
	}
}

// WithTextColumns exempts columns from numeric inference.
func WithTextColumns(names ...string) ReaderOption {
	return func(r *Reader) {
		r.textColumns = append(r.textColumns, names...)
	}
}

// NewReader creates a CSV reader.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	errEmptyTable      = errors.New("empty table")
	errDuplicateColumn = errors.New("duplicate column")
	errFieldCount      = errors.New("wrong number of fields")
)

// Read decodes a table and runs numeric inference on its columns. name is
// used in error messages.
func (r *Reader) Read(ctx context.Context, in io.Reader, name string) (*domain.Dataset, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := stdcsv.NewReader(bytes.NewReader(data))
	cr.Comma = Separator
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.TableError{Path: name, Err: errEmptyTable}
	}
	if err != nil {
		return nil, tableError(name, err)
	}

	ds := &domain.Dataset{Columns: make([]domain.Column, len(header))}
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		if seen[h] {
			return nil, &domain.TableError{Path: name, Line: 1, Err: fmt.Errorf("%w: %q", errDuplicateColumn, h)}
		}
		seen[h] = true
		ds.Columns[i] = domain.Column{Name: h, Type: domain.ColumnText}
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, tableError(name, err)
		}

		if len(fields) != len(header) {
			line, _ := cr.FieldPos(0)
			if !r.skipMalformed {
				return nil, &domain.TableError{
					Path: name,
					Line: line,
					Err:  fmt.Errorf("%w: got %d, want %d", errFieldCount, len(fields), len(header)),
				}
			}
			logger.Warn("%s: line %d: skipping row with %d fields, want %d", name, line, len(fields), len(header))
			continue
		}

		row := make([]domain.Value, len(fields))
		for i, f := range fields {
			row[i] = domain.StringValue(f)
		}
		ds.Rows = append(ds.Rows, row)
	}

	dataset.Infer(ds, r.textColumns...)
	return ds, nil
}

func tableError(name string, err error) error {
	var pe *stdcsv.ParseError
	if errors.As(err, &pe) {
		return &domain.TableError{Path: name, Line: pe.Line, Err: pe.Err}
	}
	return &domain.TableError{Path: name, Err: err}
}
