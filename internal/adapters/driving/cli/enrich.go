package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <table>",
	Short: "Append derived columns to a table",
	Long: `Load a table, derive new columns from a text column and write the
result to a new table. Each enricher adds a "<column>_<suffix>" column;
existing columns are never modified and empty or N/A cells stay N/A.

Examples:
  crowdlend enrich project_data.csv -c "Project Description"
  crowdlend enrich project_data.csv -c "A propos" -e wordcount -o out.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().StringP("column", "c", "", "source text column (required)")
	enrichCmd.Flags().StringSliceP("enricher", "e", nil, "enrichers to apply (default all)")
	enrichCmd.Flags().StringP("output", "o", "", "output table (default <table>_enriched)")
	_ = enrichCmd.MarkFlagRequired("column")
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	column, _ := cmd.Flags().GetString("column")
	enrichers, _ := cmd.Flags().GetStringSlice("enricher")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = enrichedPath(args[0])
	}

	ds, err := datasetService.Load(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	before := len(ds.Columns)
	if err := datasetService.Enrich(cmd.Context(), ds, column, enrichers...); err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	if err := datasetService.Save(cmd.Context(), ds, output, ""); err != nil {
		return fmt.Errorf("saving table: %w", err)
	}

	cmd.Printf("Added %d column(s): %s\n", len(ds.Columns)-before, strings.Join(ds.ColumnNames()[before:], ", "))
	cmd.Printf("Wrote %d rows to %s\n", ds.Len(), output)
	return nil
}

// enrichedPath derives "table_enriched.csv" from "table.csv".
func enrichedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_enriched" + ext
}
