package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <table>",
	Short: "Show the shape and column types of a table",
	Long: `Load a semicolon-separated table, infer its column types and print
one line per column with its type and the number of N/A cells.

A structurally malformed table (wrong field count, broken quoting) is
reported with its line number.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	ds, err := datasetService.Load(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	cmd.Printf("%s: %d rows x %d columns\n\n", args[0], ds.Len(), len(ds.Columns))
	for i, col := range ds.Columns {
		missing := 0
		for _, row := range ds.Rows {
			if row[i].String() == domain.NotAvailable {
				missing++
			}
		}
		cmd.Printf("  %-32s %-8s %d N/A\n", col.Name, col.Type, missing)
	}
	return nil
}
