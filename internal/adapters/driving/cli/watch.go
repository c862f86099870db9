package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-run the extraction whenever pages change",
	Long: `Run the extraction once, then again each time a page under the
directory is created, modified or removed. Bursts of changes are coalesced
and runs are spaced by the watch.interval setting. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	addRunFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	req, err := runRequest(cmd, args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", req.Root)
	return extractionService.Watch(cmd.Context(), req, func(res *driving.RunResult, err error) {
		stamp := time.Now().Format("15:04:05")
		if err != nil {
			cmd.PrintErrf("[%s] extraction failed: %v\n", stamp, err)
			return
		}
		cmd.Printf("[%s] %d rows, %d skipped -> %s\n",
			stamp, res.Run.Rows, res.Run.DocumentsSkipped, res.Run.Output)
	})
}
