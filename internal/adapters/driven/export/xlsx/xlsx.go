// Package xlsx writes datasets as single-sheet Excel workbooks.
package xlsx

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
)

// SheetName is the name of the data sheet.
const SheetName = "Projects"

const (
	minColWidth = 10
	maxColWidth = 60
)

// Verify interface compliance at compile time.
var _ driven.DatasetWriter = (*Writer)(nil)

// Writer encodes datasets into a workbook with a header row. Numeric
// columns are written as numbers, everything else as text.
type Writer struct{}

// NewWriter creates an XLSX writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns "xlsx".
func (w *Writer) Format() string {
	return domain.FormatXLSX
}

// Write encodes ds to out.
func (w *Writer) Write(ctx context.Context, out io.Writer, ds *domain.Dataset) error {
	if ds == nil {
		return domain.ErrInvalidInput
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	widths := make([]int, len(ds.Columns))
	for i, c := range ds.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, c.Name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		widths[i] = utf8.RuneCountInString(c.Name)
	}

	if len(ds.Columns) > 0 {
		if err := f.SetPanes(SheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("freezing header: %w", err)
		}
	}

	for r, row := range ds.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(SheetName, cell, cellValue(ds.Columns[c].Type, v)); err != nil {
				return fmt.Errorf("writing %s: %w", cell, err)
			}
			if n := utf8.RuneCountInString(v.String()); n > widths[c] {
				widths[c] = n
			}
		}
	}

	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(SheetName, col, col, float64(clamp(width+2, minColWidth, maxColWidth)))
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func cellValue(typ domain.ColumnType, v domain.Value) any {
	switch typ {
	case domain.ColumnInteger:
		if n, ok := v.Int(); ok {
			return n
		}
	case domain.ColumnFloat:
		if f, ok := v.Float(); ok {
			return f
		}
	}
	return v.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
