package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driving/tui/components/status"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driving/tui/keymap"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driving/tui/styles"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 30

	// cellPadding matches the horizontal padding of the cell style.
	cellPadding = 2

	// chromeLines is the title line, the table header with its border,
	// and the status bar.
	chromeLines = 4
)

// Preview is a read-only table browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type Preview struct {
	ds     *domain.Dataset
	title  string
	styles *styles.Styles
	keymap *keymap.KeyMap
	status *status.Bar

	table  table.Model
	detail viewport.Model
	widths []int

	// offset is the index of the first visible column.
	offset  int
	visible int

	showDetail bool
	width      int
	height     int
}

var _ tea.Model = (*Preview)(nil)

// NewPreview creates a preview of ds titled with the table name.
func NewPreview(ds *domain.Dataset, title string) (*Preview, error) {
	if ds == nil || len(ds.Columns) == 0 {
		return nil, ErrEmptyDataset
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	p := &Preview{
		ds:     ds,
		title:  title,
		styles: s,
		keymap: km,
		status: status.NewBar(s, km),
		widths: columnWidths(ds),
		width:  80,
		height: 24,
	}

	p.table = table.New(table.WithFocused(true))
	p.table.SetStyles(table.Styles{
		Header:   s.Header,
		Cell:     s.Cell,
		Selected: s.Selected,
	})
	p.detail = viewport.New(p.width, p.bodyHeight())
	p.layout()

	return p, nil
}

// Init initialises the preview.
func (p *Preview) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.layout()
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keymap.Quit):
			return p, tea.Quit
		case p.showDetail && key.Matches(msg, p.keymap.Back):
			p.setDetail(false)
			return p, nil
		case !p.showDetail && key.Matches(msg, p.keymap.Detail):
			p.setDetail(true)
			return p, nil
		case !p.showDetail && key.Matches(msg, p.keymap.Left):
			p.scroll(-1)
			return p, nil
		case !p.showDetail && key.Matches(msg, p.keymap.Right):
			p.scroll(1)
			return p, nil
		}
	}

	var cmd tea.Cmd
	if p.showDetail {
		p.detail, cmd = p.detail.Update(msg)
		return p, cmd
	}
	p.table, cmd = p.table.Update(msg)
	p.updateStatus()
	return p, cmd
}

// View renders the preview.
func (p *Preview) View() string {
	header := p.styles.Title.Render(p.title) +
		p.styles.Muted.Render(fmt.Sprintf("  %d rows x %d columns", p.ds.Len(), len(p.ds.Columns)))

	body := p.table.View()
	if p.showDetail {
		body = p.detail.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, p.status.View())
}

// Cursor returns the selected row index.
func (p *Preview) Cursor() int {
	return p.table.Cursor()
}

// VisibleColumns returns the names of the columns currently shown.
func (p *Preview) VisibleColumns() []string {
	return p.ds.ColumnNames()[p.offset : p.offset+p.visible]
}

// ShowingDetail reports whether the record detail is open.
func (p *Preview) ShowingDetail() bool {
	return p.showDetail
}

func (p *Preview) scroll(delta int) {
	next := p.offset + delta
	if next < 0 || next >= len(p.ds.Columns) {
		return
	}
	if delta > 0 && p.offset+p.visible >= len(p.ds.Columns) {
		return
	}
	p.offset = next
	p.layout()
}

func (p *Preview) setDetail(on bool) {
	p.showDetail = on && p.ds.Len() > 0
	if p.showDetail {
		p.detail.SetContent(p.renderRecord(p.table.Cursor()))
		p.detail.GotoTop()
		p.status.SetState(status.StateDetail)
	} else {
		p.status.SetState(status.StateTable)
	}
	p.updateStatus()
}

// layout fits the column window to the terminal width and rebuilds the
// table. Rows are cleared before the columns change so the table never
// holds rows wider than its column set.
func (p *Preview) layout() {
	p.visible = fitColumns(p.widths[p.offset:], p.width)

	cols := make([]table.Column, p.visible)
	for i := range cols {
		idx := p.offset + i
		cols[i] = table.Column{Title: p.ds.Columns[idx].Name, Width: p.widths[idx]}
	}

	rows := make([]table.Row, len(p.ds.Rows))
	for r, values := range p.ds.Rows {
		cells := make(table.Row, p.visible)
		for i := range cells {
			cells[i] = values[p.offset+i].String()
		}
		rows[r] = cells
	}

	cursor := p.table.Cursor()
	p.table.SetRows(nil)
	p.table.SetColumns(cols)
	p.table.SetRows(rows)
	p.table.SetWidth(p.width)
	p.table.SetHeight(p.bodyHeight())
	if cursor < len(rows) {
		p.table.SetCursor(cursor)
	}

	p.detail.Width = p.width
	p.detail.Height = p.bodyHeight()
	if p.showDetail {
		p.detail.SetContent(p.renderRecord(p.table.Cursor()))
	}

	p.status.SetWidth(p.width)
	p.updateStatus()
}

func (p *Preview) updateStatus() {
	p.status.SetPosition(status.Position{
		Row:         p.table.Cursor(),
		Rows:        p.ds.Len(),
		FirstColumn: p.offset,
		Visible:     p.visible,
		Columns:     len(p.ds.Columns),
	})
}

func (p *Preview) bodyHeight() int {
	return max(p.height-chromeLines, 3)
}

// renderRecord lists every field of one row, one per line.
func (p *Preview) renderRecord(row int) string {
	if row < 0 || row >= p.ds.Len() {
		return ""
	}

	nameWidth := 0
	for _, c := range p.ds.Columns {
		nameWidth = max(nameWidth, lipgloss.Width(c.Name))
	}

	var b strings.Builder
	for i, c := range p.ds.Columns {
		v := p.ds.Rows[row][i]
		name := p.styles.FieldName.Render(c.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(c.Name)))

		var value string
		switch {
		case domain.IsPlaceholder(v):
			value = p.styles.Muted.Render(v.String())
		case v.IsNumeric():
			value = p.styles.Numeric.Render(v.String())
		default:
			value = p.styles.Normal.Render(v.String())
		}
		fmt.Fprintf(&b, "%s  %s\n", name, value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// columnWidths sizes each column to its widest cell, clamped to a
// readable range.
func columnWidths(ds *domain.Dataset) []int {
	widths := make([]int, len(ds.Columns))
	for i, c := range ds.Columns {
		widths[i] = lipgloss.Width(c.Name)
	}
	for _, row := range ds.Rows {
		for i, v := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(v.String()))
			}
		}
	}
	for i, w := range widths {
		widths[i] = min(max(w, minColumnWidth), maxColumnWidth)
	}
	return widths
}

// fitColumns returns how many leading columns fit in total, never less
// than one.
func fitColumns(widths []int, total int) int {
	used, n := 0, 0
	for _, w := range widths {
		used += w + cellPadding
		if used > total {
			break
		}
		n++
	}
	if n == 0 && len(widths) > 0 {
		n = 1
	}
	return n
}
