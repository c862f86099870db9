package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driving/tui"
)

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var previewCmd = &cobra.Command{
	Use:   "preview <table>",
	Short: "Browse a table in the terminal",
	Long: `Open a table in an interactive terminal browser.

Controls:
  ↑/k, ↓/j - Move between rows
  ←/h, →/l - Scroll columns
  Enter    - Show every field of the selected row
  Esc      - Back to the table
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}
	if !isTerminal() {
		return errors.New("preview needs an interactive terminal; use inspect instead")
	}

	ds, err := datasetService.Load(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	model, err := tui.NewPreview(ds, filepath.Base(args[0]))
	if err != nil {
		return fmt.Errorf("failed to create preview: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
