package postprocessors

import (
	"context"
	"errors"
	"testing"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
)

// registryMockProcessor is a simple mock for testing registry functionality.
type registryMockProcessor struct {
	name string
}

func (m *registryMockProcessor) Name() string { return m.name }
func (m *registryMockProcessor) Process(_ context.Context, _ *domain.Record) error { return nil }

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.builders) != 0 {
		t.Errorf("expected empty builders, got %d", len(r.builders))
	}
}

func TestRegistry_Build_Success(t *testing.T) {
	r := NewRegistry()

	r.Register("test", func(cfg map[string]any) (driven.RecordProcessor, error) {
		name := "default"
		if n, ok := cfg["name"].(string); ok {
			name = n
		}
		return &registryMockProcessor{name: name}, nil
	})

	proc, err := r.Build("test", map[string]any{"name": "custom"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if proc.Name() != "custom" {
		t.Errorf("expected name 'custom', got %q", proc.Name())
	}
}

func TestRegistry_Build_UnknownProcessor(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Build("unknown", nil); err == nil {
		t.Error("expected error for unknown processor")
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	expected := []string{"defaults", "duration", "financing_duration"}
	names := r.Names()
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("expected %q at %d, got %q", name, i, names[i])
		}
	}
}

func TestBuildPipeline(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	p, err := BuildPipeline(r, []string{"defaults", "duration"}, map[string]map[string]any{
		"defaults": {"risk": "?"},
	})
	if err != nil {
		t.Fatalf("BuildPipeline failed: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 processors, got %d", p.Len())
	}

	rec := domain.NewRecord()
	if err := p.Process(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	risk, _ := rec.Get(domain.FieldRiskLevel)
	if risk.Text() != "?" {
		t.Errorf("expected configured risk placeholder, got %q", risk.Text())
	}
}

func TestBuildPipeline_UnknownName(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	if _, err := BuildPipeline(r, []string{"defaults", "nope"}, nil); err == nil {
		t.Error("expected error for unknown processor name")
	}
}

func TestBuildPipeline_RequiresDefaultsFirst(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	for _, names := range [][]string{
		nil,
		{"duration", "financing_duration"},
		{"duration", "defaults"},
		{"defaults", "duration", "defaults"},
	} {
		_, err := BuildPipeline(r, names, nil)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("BuildPipeline(%v): expected invalid input, got %v", names, err)
		}
	}
}

func TestValidateNames(t *testing.T) {
	if err := ValidateNames([]string{"defaults"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNames([]string{"duration"}); !errors.Is(err, ErrDefaultsFirst) {
		t.Errorf("expected ErrDefaultsFirst, got %v", err)
	}
}
