// Command crowdlend extracts saved crowd-lending project pages into a table.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driven/config/file"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driven/export/csv"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driven/export/xlsx"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driven/report"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driven/storage/memory"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driven/storage/sqlite"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driving/cli"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/connectors/filesystem"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/services"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/enrichers/wordcount"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/extractors"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/extractors/rules"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/normalisers/plaintext"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/postprocessors"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	home, err := homeDir()
	if err != nil {
		return err
	}

	cfg, err := file.NewConfigStore(home)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings := services.LoadSettings(cfg)

	var runStore driven.RunStore
	store, err := sqlite.NewStore(filepath.Join(home, "data"))
	if err != nil {
		logger.Warn("run history unavailable, keeping it in memory: %v", err)
		runStore = memory.NewRunStore()
	} else {
		defer store.Close()
		runStore = store.RunStore()
	}

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	pipeline, err := postprocessors.BuildPipeline(registry, settings.Processors, nil)
	if err != nil {
		return fmt.Errorf("config %s: %w", services.KeyProcessors, err)
	}

	writers := []driven.DatasetWriter{csv.NewWriter(), xlsx.NewWriter()}

	extraction := services.NewExtractionService(
		filesystem.NewFactory(),
		plaintext.New(),
		extractors.New(rules.Default(rules.WithDescriptionLine(settings.DescriptionLine))...),
		pipeline,
		runStore,
		writers...,
	)
	extraction.SetWatchInterval(settings.WatchInterval)

	datasets := services.NewDatasetService(
		csv.NewReader(csv.WithTextColumns(domain.FieldFileName)),
		writers,
		wordcount.New(),
	)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Extraction: extraction,
		Dataset:    datasets,
		Runs:       services.NewRunService(runStore),
		Config:     cfg,
		Report:     report.NewYAMLWriter(),
		Settings:   settings,
	})

	return cli.ExecuteContext(ctx)
}

// homeDir returns the crowdlend state directory: $CROWDLEND_HOME, or
// ~/.crowdlend.
func homeDir() (string, error) {
	if dir := os.Getenv("CROWDLEND_HOME"); dir != "" {
		return dir, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(userHome, ".crowdlend"), nil
}
