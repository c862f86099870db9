package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect extraction run history",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a run and its document outcomes",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Remove a run from history",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	runsListCmd.Flags().IntP("limit", "n", 20, "number of runs to show (0 = all)")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsDeleteCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := runService.List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tSTATUS\tDOCS\tSKIPPED\tROWS\tOUTPUT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Status,
			r.DocumentsSeen, r.DocumentsSkipped, r.Rows, r.Output)
	}
	return w.Flush()
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	run, outcomes, err := runService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	cmd.Printf("Run %s\n", run.ID)
	cmd.Printf("  Status:    %s\n", run.Status)
	cmd.Printf("  Root:      %s\n", run.Root)
	if run.Output != "" {
		cmd.Printf("  Output:    %s (%s)\n", run.Output, run.Format)
	}
	cmd.Printf("  Started:   %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("  Duration:  %s\n", run.Duration())
	cmd.Printf("  Documents: %d seen, %d extracted, %d skipped\n",
		run.DocumentsSeen, run.DocumentsExtracted, run.DocumentsSkipped)
	cmd.Printf("  Table:     %d rows x %d columns\n", run.Rows, run.Columns)
	if run.Checksum != "" {
		cmd.Printf("  SHA-256:   %s\n", run.Checksum)
	}
	if run.Error != "" {
		cmd.Printf("  Error:     %s\n", run.Error)
	}

	if len(outcomes) == 0 {
		return nil
	}
	cmd.Println()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DOCUMENT\tSTATUS\tFIELDS\tERRORS\tMESSAGE")
	for _, o := range outcomes {
		name := o.Name
		if name == "" {
			name = o.URI
		}
		msg := strings.ReplaceAll(o.Message, "\n", "; ")
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", name, o.Status, o.Fields, o.FieldErrors, msg)
	}
	return w.Flush()
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	if err := runService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	cmd.Printf("Deleted run %s\n", args[0])
	return nil
}
