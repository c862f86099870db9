package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/adapters/driven/config/file"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/services"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/postprocessors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Read and change the settings stored in config.toml.

Keys:
  extract.description_line  line of the "| ..." block holding the description
  extract.skip_hidden       skip dot-files (true/false)
  extract.extensions        file extensions to read, e.g. txt,md ([] = all)
  output.path               default output table
  output.format             csv or xlsx (empty = from output.path)
  pipeline.processors       record pipeline stages, in order; must start with defaults
  watch.interval            minimum delay between watch runs, e.g. 2s`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a setting, or every setting",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		cmd.Println(configStore.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := services.SettingKeys()
	if len(args) == 1 {
		if !slices.Contains(keys, args[0]) {
			return unknownKeyError(args[0])
		}
		keys = args[:1]
	}

	for _, key := range keys {
		if v, ok := configStore.Get(key); ok {
			cmd.Printf("%s = %s\n", key, formatConfigValue(v))
			continue
		}
		def, _ := services.DefaultSettingValue(key)
		cmd.Printf("%s = %s (default)\n", key, def)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if !slices.Contains(services.SettingKeys(), key) {
		return unknownKeyError(key)
	}

	value, err := configValue(key, raw)
	if err != nil {
		return err
	}
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("%s = %s\n", key, formatConfigValue(value))
	return nil
}

func listValue(key, raw string) ([]string, error) {
	switch v := file.ParseValue(raw).(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	default:
		return nil, fmt.Errorf("%s expects a list, got %q: %w", key, raw, domain.ErrInvalidInput)
	}
}

// configValue parses raw for key and rejects values LoadSettings would
// ignore.
func configValue(key, raw string) (any, error) {
	switch key {
	case services.KeyExtensions:
		exts, err := listValue(key, raw)
		if err != nil {
			return nil, err
		}
		return exts, nil
	case services.KeyProcessors:
		names, err := listValue(key, raw)
		if err != nil {
			return nil, err
		}
		if err := postprocessors.ValidateNames(names); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return names, nil
	case services.KeyDescriptionLine:
		v, ok := file.ParseValue(raw).(int64)
		if !ok || v < 0 {
			return nil, fmt.Errorf("%s expects a non-negative integer, got %q: %w", key, raw, domain.ErrInvalidInput)
		}
		return v, nil
	case services.KeySkipHidden:
		v, ok := file.ParseValue(raw).(bool)
		if !ok {
			return nil, fmt.Errorf("%s expects true or false, got %q: %w", key, raw, domain.ErrInvalidInput)
		}
		return v, nil
	case services.KeyOutputFormat:
		v := strings.ToLower(strings.TrimSpace(raw))
		if v != "" && v != domain.FormatCSV && v != domain.FormatXLSX {
			return nil, fmt.Errorf("%s: %w: %q", key, domain.ErrUnsupportedFormat, raw)
		}
		return v, nil
	case services.KeyWatchInterval:
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%s expects a positive duration such as 2s, got %q: %w", key, raw, domain.ErrInvalidInput)
		}
		return d.String(), nil
	default:
		return strings.TrimSpace(raw), nil
	}
}

func formatConfigValue(v any) string {
	switch x := v.(type) {
	case []string:
		return "[" + strings.Join(x, ",") + "]"
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = fmt.Sprint(item)
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return fmt.Sprint(v)
	}
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q (known keys: %s): %w",
		key, strings.Join(services.SettingKeys(), ", "), domain.ErrInvalidInput)
}
