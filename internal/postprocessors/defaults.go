package postprocessors

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/postprocessors/fill"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/postprocessors/units"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(fill.Name, buildFill)
	r.Register(units.DurationName, func(map[string]any) (driven.RecordProcessor, error) {
		return units.NewDuration(), nil
	})
	r.Register(units.FinancingName, func(map[string]any) (driven.RecordProcessor, error) {
		return units.NewFinancing(), nil
	})
}

// NewDefaultPipeline returns the standard normalisation pipeline: default
// fill, then loan duration and financing duration canonicalisation.
func NewDefaultPipeline() *Pipeline {
	r := NewRegistry()
	RegisterDefaults(r)
	// Built-in names are always registered.
	p, _ := BuildPipeline(r, domain.DefaultSettings().Processors, nil)
	return p
}

// Normalize runs the standard pipeline over rec.
func Normalize(ctx context.Context, rec *domain.Record) error {
	return NewDefaultPipeline().Process(ctx, rec)
}

// buildFill creates the default fill processor from generic config.
// Supported config keys:
//   - risk (string): Placeholder written when no risk level was found (default: NC)
func buildFill(cfg map[string]any) (driven.RecordProcessor, error) {
	var opts []fill.Option

	if cfg != nil {
		if risk := getStringFromConfig(cfg, "risk"); risk != "" {
			opts = append(opts, fill.WithRiskPlaceholder(risk))
		}
	}

	return fill.New(opts...), nil
}

// getStringFromConfig safely extracts a string from generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	val, ok := cfg[key]
	if !ok {
		return ""
	}
	s, _ := val.(string)
	return s
}
