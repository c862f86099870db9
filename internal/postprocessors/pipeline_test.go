package postprocessors

import (
	"context"
	"errors"
	"testing"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// mockProcessor is a test processor that sets one field or fails.
type mockProcessor struct {
	name  string
	field string
	value domain.Value
	err   error
}

func (m *mockProcessor) Name() string {
	return m.name
}

func (m *mockProcessor) Process(_ context.Context, rec *domain.Record) error {
	if m.err != nil {
		return m.err
	}
	if m.field != "" {
		rec.Set(m.field, m.value)
	}
	return nil
}

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.Len() != 0 {
		t.Errorf("expected 0 processors, got %d", p.Len())
	}
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline()
	p.Add(&mockProcessor{name: "test"})

	if p.Len() != 1 {
		t.Errorf("expected 1 processor, got %d", p.Len())
	}
	if names := p.Names(); len(names) != 1 || names[0] != "test" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestPipeline_Process_NilRecord(t *testing.T) {
	p := NewPipeline()

	if err := p.Process(context.Background(), nil); err == nil {
		t.Error("expected error for nil record")
	}
}

func TestPipeline_Process_EmptyPipeline(t *testing.T) {
	p := NewPipeline()
	rec := domain.NewRecord()
	rec.Set("a", domain.StringValue("x"))

	if err := p.Process(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Len() != 1 {
		t.Errorf("expected record unchanged, got %d fields", rec.Len())
	}
}

func TestPipeline_Process_Order(t *testing.T) {
	p := NewPipeline(
		&mockProcessor{name: "first", field: "a", value: domain.StringValue("first")},
		&mockProcessor{name: "second", field: "a", value: domain.StringValue("second")},
	)
	rec := domain.NewRecord()

	if err := p.Process(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := rec.Get("a")
	if got.Text() != "second" {
		t.Errorf("expected last processor to win, got %q", got.Text())
	}
}

func TestPipeline_Process_ProcessorError(t *testing.T) {
	expectedErr := errors.New("processor failed")

	p := NewPipeline(
		&mockProcessor{name: "failing", err: expectedErr},
		&mockProcessor{name: "after", field: "a", value: domain.StringValue("x")},
	)
	rec := domain.NewRecord()

	err := p.Process(context.Background(), rec)
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected wrapped error, got: %v", err)
	}
	if rec.Has("a") {
		t.Error("expected pipeline to stop at the failing processor")
	}
}

func TestNormalize(t *testing.T) {
	rec := domain.NewRecord()
	rec.Set(domain.FieldDurationValue, domain.StringValue("2"))
	rec.Set(domain.FieldDurationUnit, domain.StringValue("ans"))
	rec.Set(domain.FieldFinancingValue, domain.StringValue("3"))
	rec.Set(domain.FieldFinancingUnit, domain.StringValue("heures"))

	if err := Normalize(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	duration, _ := rec.Get(domain.FieldDurationValue)
	if n, _ := duration.Int(); n != 24 {
		t.Errorf("expected 24 months, got %v", duration)
	}
	financing, _ := rec.Get(domain.FieldFinancingValue)
	if f, _ := financing.Float(); f != 180 {
		t.Errorf("expected 180 minutes, got %v", financing)
	}
	risk, _ := rec.Get(domain.FieldRiskLevel)
	if risk.Text() != domain.RiskNotClassified {
		t.Errorf("expected risk %q, got %q", domain.RiskNotClassified, risk.Text())
	}
	if rec.Has(domain.FieldDurationUnit) || rec.Has(domain.FieldFinancingUnit) {
		t.Error("expected unit fields to be removed")
	}
}

func TestNormalize_EmptyRecord(t *testing.T) {
	rec := domain.NewRecord()

	if err := Normalize(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	duration, _ := rec.Get(domain.FieldDurationValue)
	if n, ok := duration.Int(); !ok || n != 0 {
		t.Errorf("expected duration 0, got %v", duration)
	}
	financing, _ := rec.Get(domain.FieldFinancingValue)
	if f, _ := financing.Float(); f != -1 {
		t.Errorf("expected financing -1, got %v", financing)
	}
	if rec.Len() != 3 {
		t.Errorf("expected 3 fields, got %v", rec.Fields())
	}
}
