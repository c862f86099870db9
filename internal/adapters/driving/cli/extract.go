package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
)

var extractCmd = &cobra.Command{
	Use:   "extract <dir>",
	Short: "Extract every project page under a directory",
	Long: `Read every project page under a directory, extract and normalise its
fields, and write one table with a row per page.

Pages that cannot be read are skipped and reported; fields that cannot be
derived are left out of their row. The table is semicolon-separated UTF-8
unless --format xlsx (or an .xlsx output path) is used.

Examples:
  crowdlend extract ./pages
  crowdlend extract ./pages -o projects.xlsx --report run.yaml
  crowdlend extract ./pages --limit 10 --ext txt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	addRunFlags(extractCmd)
	extractCmd.Flags().String("report", "", "write a YAML run report to this file")
	rootCmd.AddCommand(extractCmd)
}

// addRunFlags registers the flags shared by extract and watch.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output table (default from config output.path)")
	cmd.Flags().StringP("format", "f", "", "output format: csv or xlsx (default from extension)")
	cmd.Flags().Int("limit", 0, "read at most N documents (0 = all)")
	cmd.Flags().StringSlice("ext", nil, "only read files with these extensions")
	cmd.Flags().Bool("hidden", false, "also read hidden files")
}

// runRequest builds a run request from flags, falling back to settings.
func runRequest(cmd *cobra.Command, root string) (driving.RunRequest, error) {
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")
	exts, _ := cmd.Flags().GetStringSlice("ext")
	hidden, _ := cmd.Flags().GetBool("hidden")

	if limit < 0 {
		return driving.RunRequest{}, fmt.Errorf("--limit must be zero or positive: %w", domain.ErrInvalidInput)
	}
	if output == "" {
		output = settings.OutputPath
		if format == "" {
			format = settings.OutputFormat
		}
	}
	if !cmd.Flags().Changed("ext") {
		exts = settings.Extensions
	}

	return driving.RunRequest{
		Root:   root,
		Output: output,
		Format: format,
		Discovery: domain.DiscoveryOptions{
			SkipHidden: settings.SkipHidden && !hidden,
			Extensions: exts,
			Limit:      limit,
		},
	}, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	req, err := runRequest(cmd, args[0])
	if err != nil {
		return err
	}

	res, runErr := extractionService.Run(cmd.Context(), req)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" && res != nil && res.Run != nil {
		if err := writeReport(reportPath, res); err != nil {
			return err
		}
		cmd.Printf("Report written to %s\n", reportPath)
	}

	if runErr != nil {
		return fmt.Errorf("extraction failed: %w", runErr)
	}

	printRunSummary(cmd, res.Run)
	for _, o := range res.Outcomes {
		if o.Status == domain.OutcomeSkipped {
			cmd.Printf("  skipped %s: %s\n", o.URI, o.Message)
		}
	}
	return nil
}

func printRunSummary(cmd *cobra.Command, run *domain.Run) {
	cmd.Printf("Extracted %d of %d documents (%d skipped, %d field errors)\n",
		run.DocumentsExtracted, run.DocumentsSeen, run.DocumentsSkipped, run.FieldErrors)
	if run.Output != "" {
		cmd.Printf("Wrote %d rows x %d columns to %s\n", run.Rows, run.Columns, run.Output)
	}
	cmd.Printf("Run: %s\n", run.ID)
}

func writeReport(path string, res *driving.RunResult) error {
	if reportWriter == nil {
		return errors.New("report writer not configured")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := reportWriter.Write(f, res.Run, res.Outcomes); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}
