package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
)

// Config keys for settings storage.
const (
	KeyDescriptionLine = "extract.description_line"
	KeySkipHidden      = "extract.skip_hidden"
	KeyExtensions      = "extract.extensions"
	KeyOutputPath      = "output.path"
	KeyOutputFormat    = "output.format"
	KeyProcessors      = "pipeline.processors"
	KeyWatchInterval   = "watch.interval"
)

// SettingKeys lists every key LoadSettings reads, in display order.
func SettingKeys() []string {
	return []string{
		KeyDescriptionLine,
		KeySkipHidden,
		KeyExtensions,
		KeyOutputPath,
		KeyOutputFormat,
		KeyProcessors,
		KeyWatchInterval,
	}
}

// LoadSettings reads the extraction settings from the config store.
// Keys that are absent or hold an unusable value keep their default.
func LoadSettings(cfg driven.ConfigStore) domain.Settings {
	s := domain.DefaultSettings()
	if cfg == nil {
		return s
	}

	if _, ok := cfg.Get(KeyDescriptionLine); ok {
		s.DescriptionLine = cfg.GetInt(KeyDescriptionLine)
	}
	if _, ok := cfg.Get(KeySkipHidden); ok {
		s.SkipHidden = cfg.GetBool(KeySkipHidden)
	}
	if _, ok := cfg.Get(KeyExtensions); ok {
		s.Extensions = cfg.GetStringSlice(KeyExtensions)
	}
	if v := cfg.GetString(KeyOutputPath); v != "" {
		s.OutputPath = v
	}
	if v := strings.ToLower(cfg.GetString(KeyOutputFormat)); v != "" {
		s.OutputFormat = v
	}
	if _, ok := cfg.Get(KeyProcessors); ok {
		s.Processors = cfg.GetStringSlice(KeyProcessors)
	}
	if v := cfg.GetString(KeyWatchInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			logger.Warn("ignoring %s=%q: not a positive duration", KeyWatchInterval, v)
		} else {
			s.WatchInterval = d
		}
	}

	return s
}

// DefaultSettingValue renders the default of a setting key the way
// `config set` accepts it.
func DefaultSettingValue(key string) (string, bool) {
	d := domain.DefaultSettings()
	switch key {
	case KeyDescriptionLine:
		return strconv.Itoa(d.DescriptionLine), true
	case KeySkipHidden:
		return strconv.FormatBool(d.SkipHidden), true
	case KeyExtensions:
		return "[" + strings.Join(d.Extensions, ",") + "]", true
	case KeyOutputPath:
		return d.OutputPath, true
	case KeyOutputFormat:
		return d.OutputFormat, true
	case KeyProcessors:
		return "[" + strings.Join(d.Processors, ",") + "]", true
	case KeyWatchInterval:
		return d.WatchInterval.String(), true
	default:
		return "", false
	}
}
