package fill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

func TestProcess_EmptyRecord(t *testing.T) {
	rec := domain.NewRecord()

	require.NoError(t, New().Process(context.Background(), rec))

	tests := []struct {
		field    string
		expected domain.Value
	}{
		{domain.FieldDurationUnit, domain.StringValue("mois")},
		{domain.FieldDurationValue, domain.IntValue(0)},
		{domain.FieldFinancingUnit, domain.StringValue("nc")},
		{domain.FieldFinancingValue, domain.FloatValue(-1)},
		{domain.FieldRiskLevel, domain.StringValue("NC")},
	}
	for _, tt := range tests {
		got, ok := rec.Get(tt.field)
		require.True(t, ok, tt.field)
		assert.Equal(t, tt.expected, got, tt.field)
	}
	assert.Equal(t, 5, rec.Len())
}

func TestProcess_KeepsPresentValues(t *testing.T) {
	rec := domain.NewRecord()
	rec.Set(domain.FieldRiskLevel, domain.StringValue("B2"))
	rec.Set(domain.FieldDurationValue, domain.StringValue("18"))
	rec.Set(domain.FieldDurationUnit, domain.StringValue("ans"))

	require.NoError(t, New().Process(context.Background(), rec))

	risk, _ := rec.Get(domain.FieldRiskLevel)
	assert.Equal(t, "B2", risk.Text())
	unit, _ := rec.Get(domain.FieldDurationUnit)
	assert.Equal(t, "ans", unit.Text())
	value, _ := rec.Get(domain.FieldDurationValue)
	assert.Equal(t, "18", value.Text())
}

func TestProcess_ReplacesPlaceholders(t *testing.T) {
	rec := domain.NewRecord()
	rec.Set(domain.FieldRiskLevel, domain.StringValue("N/A"))
	rec.Set(domain.FieldFinancingUnit, domain.StringValue("  "))

	require.NoError(t, New().Process(context.Background(), rec))

	risk, _ := rec.Get(domain.FieldRiskLevel)
	assert.Equal(t, "NC", risk.Text())
	unit, _ := rec.Get(domain.FieldFinancingUnit)
	assert.Equal(t, "nc", unit.Text())
}

func TestProcess_Idempotent(t *testing.T) {
	rec := domain.NewRecord()
	p := New()

	require.NoError(t, p.Process(context.Background(), rec))
	once := rec.Clone()
	require.NoError(t, p.Process(context.Background(), rec))

	assert.Equal(t, once, rec)
}

func TestWithRiskPlaceholder(t *testing.T) {
	rec := domain.NewRecord()

	require.NoError(t, New(WithRiskPlaceholder("?"), WithRiskPlaceholder("")).Process(context.Background(), rec))

	risk, _ := rec.Get(domain.FieldRiskLevel)
	assert.Equal(t, "?", risk.Text())
}

func TestProcess_NilRecord(t *testing.T) {
	assert.ErrorIs(t, New().Process(context.Background(), nil), domain.ErrInvalidInput)
}

func TestName(t *testing.T) {
	assert.Equal(t, "defaults", New().Name())
}
