package domain

// ColumnType is the inferred type of a dataset column.
type ColumnType int

const (
	// ColumnText holds strings. A column stays textual unless every cell
	// converts to a number.
	ColumnText ColumnType = iota

	// ColumnInteger holds integers only.
	ColumnInteger

	// ColumnFloat holds floats, or a mix of integers and floats.
	ColumnFloat
)

// String returns the column type name.
func (c ColumnType) String() string {
	switch c {
	case ColumnInteger:
		return "integer"
	case ColumnFloat:
		return "float"
	default:
		return "text"
	}
}

// Column describes one dataset column.
type Column struct {
	Name string
	Type ColumnType
}

// Dataset is a rectangular table: every row has one cell per column.
// Row order mirrors document discovery order.
type Dataset struct {
	Columns []Column
	Rows    [][]Value
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the position of a column, or -1 when absent.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row for the named column.
func (d *Dataset) Cell(row int, column string) (Value, bool) {
	idx := d.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(d.Rows) {
		return Value{}, false
	}
	return d.Rows[row][idx], true
}

// AddColumn appends a column filled from values. values must have one
// entry per row.
func (d *Dataset) AddColumn(col Column, values []Value) error {
	if d.ColumnIndex(col.Name) >= 0 {
		return ErrAlreadyExists
	}
	if len(values) != len(d.Rows) {
		return ErrInvalidInput
	}
	d.Columns = append(d.Columns, col)
	for i := range d.Rows {
		d.Rows[i] = append(d.Rows[i], values[i])
	}
	return nil
}
