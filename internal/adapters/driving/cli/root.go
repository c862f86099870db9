// Package cli implements the crowdlend command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by main.
var (
	extractionService driving.ExtractionService
	datasetService    driving.DatasetService
	runService        driving.RunService
	configStore       driven.ConfigStore
	reportWriter      driven.ReportWriter
	settings          = domain.DefaultSettings()
)

// Services groups the dependencies of the commands.
type Services struct {
	Extraction driving.ExtractionService
	Dataset    driving.DatasetService
	Runs       driving.RunService
	Config     driven.ConfigStore
	Report     driven.ReportWriter
	Settings   domain.Settings
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	extractionService = s.Extraction
	datasetService = s.Dataset
	runService = s.Runs
	configStore = s.Config
	reportWriter = s.Report
	settings = s.Settings
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "crowdlend",
	Short: "Extract crowd-lending project pages into a table",
	Long: `crowdlend turns saved crowd-lending project pages into one
semicolon-separated table, one row per project.

Each page is matched against a fixed rule set (name, location, amounts,
rate, risk, durations, company facts), normalised (durations in months,
financing time in minutes, sentinels for missing values) and assembled
into a table whose numeric columns are inferred.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print debug logs to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which commands observe
// for cancellation.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
