package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_ZeroValueIsEmptyString(t *testing.T) {
	var v Value
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "", v.String())
	assert.True(t, v.IsBlank())
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"text", StringValue("B2"), "B2"},
		{"integer", IntValue(18), "18"},
		{"negative integer", IntValue(-3), "-3"},
		{"whole float keeps decimal point", FloatValue(1000), "1000.0"},
		{"fraction", FloatValue(0.085), "0.085"},
		{"sentinel", FloatValue(FinancingNotApplicable), "-1.0"},
		{"minutes", FloatValue(2880), "2880.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestFormatFloat_NonFinite(t *testing.T) {
	assert.Equal(t, "nan", FormatFloat(math.NaN()))
	assert.Equal(t, "inf", FormatFloat(math.Inf(1)))
	assert.Equal(t, "-inf", FormatFloat(math.Inf(-1)))
}

func TestValue_Int(t *testing.T) {
	i, ok := IntValue(7).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(7), i)

	i, ok = FloatValue(24).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(24), i)

	_, ok = FloatValue(2.5).Int()
	assert.False(t, ok)

	_, ok = StringValue("7").Int()
	assert.False(t, ok)
}

func TestValue_Float(t *testing.T) {
	f, ok := IntValue(3).Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	f, ok = FloatValue(0.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	_, ok = StringValue("0.5").Float()
	assert.False(t, ok)
}

func TestValue_IsNumeric(t *testing.T) {
	assert.True(t, IntValue(1).IsNumeric())
	assert.True(t, FloatValue(1).IsNumeric())
	assert.False(t, StringValue("1").IsNumeric())
}

func TestValue_Text(t *testing.T) {
	assert.Equal(t, "Lyon", StringValue("Lyon").Text())
	assert.Equal(t, "", IntValue(69).Text())
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder(StringValue("")))
	assert.True(t, IsPlaceholder(StringValue("   ")))
	assert.True(t, IsPlaceholder(StringValue(NotAvailable)))
	assert.False(t, IsPlaceholder(StringValue("NC")))
	assert.False(t, IsPlaceholder(IntValue(0)))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "text", KindString.String())
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
