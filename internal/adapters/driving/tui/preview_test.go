package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

func testDataset(columns, rows int) *domain.Dataset {
	ds := &domain.Dataset{}
	for c := 0; c < columns; c++ {
		ds.Columns = append(ds.Columns, domain.Column{Name: fmt.Sprintf("column_%02d", c)})
	}
	for r := 0; r < rows; r++ {
		row := make([]domain.Value, columns)
		for c := range row {
			row[c] = domain.StringValue(fmt.Sprintf("r%dc%d", r, c))
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, p *Preview, msg tea.Msg) tea.Cmd {
	t.Helper()
	model, cmd := p.Update(msg)
	require.Same(t, p, model)
	return cmd
}

func TestNewPreview_EmptyDataset(t *testing.T) {
	_, err := NewPreview(nil, "x")
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = NewPreview(&domain.Dataset{}, "x")
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestPreview_InitialView(t *testing.T) {
	p, err := NewPreview(testDataset(3, 2), "project_data.csv")
	require.NoError(t, err)

	assert.Nil(t, p.Init())
	view := p.View()
	assert.Contains(t, view, "project_data.csv")
	assert.Contains(t, view, "2 rows x 3 columns")
	assert.Contains(t, view, "column_00")
	assert.Contains(t, view, "r1c2")
	assert.Contains(t, view, "row 1/2")
	assert.Equal(t, []string{"column_00", "column_01", "column_02"}, p.VisibleColumns())
}

func TestPreview_NoRows(t *testing.T) {
	p, err := NewPreview(testDataset(2, 0), "empty.csv")
	require.NoError(t, err)

	send(t, p, keyMsg("enter"))

	assert.False(t, p.ShowingDetail())
	assert.Contains(t, p.View(), "no rows")
}

func TestPreview_HorizontalScroll(t *testing.T) {
	p, err := NewPreview(testDataset(12, 3), "wide.csv")
	require.NoError(t, err)
	send(t, p, tea.WindowSizeMsg{Width: 40, Height: 20})

	first := p.VisibleColumns()
	require.NotEmpty(t, first)
	require.Less(t, len(first), 12)
	assert.Equal(t, "column_00", first[0])

	send(t, p, keyMsg("l"))
	assert.Equal(t, "column_01", p.VisibleColumns()[0])
	assert.Contains(t, p.View(), "columns 2-")

	send(t, p, keyMsg("left"))
	send(t, p, keyMsg("left"))
	assert.Equal(t, "column_00", p.VisibleColumns()[0])
}

func TestPreview_ScrollStopsAtLastColumn(t *testing.T) {
	p, err := NewPreview(testDataset(12, 1), "wide.csv")
	require.NoError(t, err)
	send(t, p, tea.WindowSizeMsg{Width: 40, Height: 20})

	for i := 0; i < 20; i++ {
		send(t, p, keyMsg("right"))
	}

	visible := p.VisibleColumns()
	assert.Equal(t, "column_11", visible[len(visible)-1])
}

func TestPreview_ResizeShowsMoreColumns(t *testing.T) {
	p, err := NewPreview(testDataset(12, 1), "wide.csv")
	require.NoError(t, err)

	send(t, p, tea.WindowSizeMsg{Width: 30, Height: 10})
	narrow := len(p.VisibleColumns())
	send(t, p, tea.WindowSizeMsg{Width: 200, Height: 10})

	assert.Greater(t, len(p.VisibleColumns()), narrow)
}

func TestPreview_RowNavigationAndDetail(t *testing.T) {
	ds := testDataset(3, 3)
	ds.Rows[1][2] = domain.StringValue(domain.NotAvailable)
	p, err := NewPreview(ds, "t.csv")
	require.NoError(t, err)

	send(t, p, keyMsg("down"))
	assert.Equal(t, 1, p.Cursor())

	send(t, p, keyMsg("enter"))
	require.True(t, p.ShowingDetail())
	view := p.View()
	assert.Contains(t, view, "column_00")
	assert.Contains(t, view, "r1c0")
	assert.Contains(t, view, "N/A")
	assert.Contains(t, view, "3 fields")

	// Column scrolling is ignored in the detail view.
	send(t, p, keyMsg("l"))
	assert.Equal(t, "column_00", p.VisibleColumns()[0])

	send(t, p, keyMsg("esc"))
	assert.False(t, p.ShowingDetail())
	assert.Equal(t, 1, p.Cursor())
}

func TestPreview_Quit(t *testing.T) {
	p, err := NewPreview(testDataset(1, 1), "t.csv")
	require.NoError(t, err)

	cmd := send(t, p, keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestColumnWidths(t *testing.T) {
	ds := &domain.Dataset{
		Columns: []domain.Column{{Name: "id"}, {Name: "description"}, {Name: "amount"}},
		Rows: [][]domain.Value{
			{domain.IntValue(1), domain.StringValue("a very long description that keeps going and going"), domain.FloatValue(1000)},
		},
	}

	assert.Equal(t, []int{minColumnWidth, maxColumnWidth, minColumnWidth}, columnWidths(ds))
}

func TestFitColumns(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
		total  int
		want   int
	}{
		{"all fit", []int{10, 10}, 30, 2},
		{"partial", []int{10, 10, 10}, 25, 2},
		{"always one", []int{50}, 20, 1},
		{"none", nil, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitColumns(tt.widths, tt.total))
		})
	}
}
