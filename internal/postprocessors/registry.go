package postprocessors

import (
	"errors"
	"fmt"
	"sort"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/postprocessors/fill"
)

// ErrDefaultsFirst is returned for a processor list that does not start
// with the defaults processor. Unit processors drop fields the defaults
// processor would otherwise write back.
var ErrDefaultsFirst = errors.New("pipeline must start with the " + fill.Name + " processor")

// BuilderFunc creates a RecordProcessor from generic config.
// Config is a map of processor-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.RecordProcessor, error)

// Registry maps processor names to their builders.
// It allows dynamic construction of processors from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new processor registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a processor builder to the registry.
// Name should be unique and match the processor's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a processor by name with the given config.
// Returns error if the processor name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.RecordProcessor, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown processor: %s", name)
	}
	return builder(cfg)
}

// Has returns true if a processor with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered processor names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateNames checks a configured processor list: it must start with the
// defaults processor and name it only once.
func ValidateNames(names []string) error {
	if len(names) == 0 || names[0] != fill.Name {
		return fmt.Errorf("%w: got %v: %w", ErrDefaultsFirst, names, domain.ErrInvalidInput)
	}
	for _, name := range names[1:] {
		if name == fill.Name {
			return fmt.Errorf("%s listed twice: %w", fill.Name, domain.ErrInvalidInput)
		}
	}
	return nil
}

// BuildPipeline builds a pipeline from processor names, in order.
// cfgs holds optional per-processor config keyed by processor name.
func BuildPipeline(r *Registry, names []string, cfgs map[string]map[string]any) (*Pipeline, error) {
	if err := ValidateNames(names); err != nil {
		return nil, fmt.Errorf("building pipeline: %w", err)
	}
	p := NewPipeline()
	for _, name := range names {
		processor, err := r.Build(name, cfgs[name])
		if err != nil {
			return nil, fmt.Errorf("building pipeline: %w", err)
		}
		p.Add(processor)
	}
	return p, nil
}
