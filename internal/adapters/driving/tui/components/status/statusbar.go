// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driving/tui/keymap"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driving/tui/styles"
)

// State represents the current preview mode for display.
type State string

const (
	StateTable  State = "table"
	StateDetail State = "detail"
)

// Position locates the cursor and the visible column window.
// Row and FirstColumn are zero-based.
type Position struct {
	Row         int
	Rows        int
	FirstColumn int
	Visible     int
	Columns     int
}

// Bar displays the cursor position and keybinding hints.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	state  State
	pos    Position
	width  int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateTable,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	p := s.pos
	if p.Rows == 0 {
		return s.styles.Muted.Render("no rows")
	}
	row := fmt.Sprintf("row %d/%d", p.Row+1, p.Rows)
	if s.state == StateDetail {
		return s.styles.Normal.Render(row + fmt.Sprintf(" · %d fields", p.Columns))
	}
	last := p.FirstColumn + p.Visible
	return s.styles.Normal.Render(row + fmt.Sprintf(" · columns %d-%d of %d", p.FirstColumn+1, last, p.Columns))
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateDetail {
		bindings = s.keymap.DetailHelp()
	} else {
		bindings = s.keymap.TableHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetPosition sets the cursor position and column window.
func (s *Bar) SetPosition(p Position) {
	s.pos = p
}

// Position returns the last position set.
func (s *Bar) Position() Position {
	return s.pos
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
