package csv

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

func sampleDataset() *domain.Dataset {
	return &domain.Dataset{
		Columns: []domain.Column{
			{Name: domain.FieldProjectName, Type: domain.ColumnText},
			{Name: domain.FieldDepartment, Type: domain.ColumnText},
			{Name: domain.FieldAmountRaised, Type: domain.ColumnFloat},
			{Name: domain.FieldDurationValue, Type: domain.ColumnInteger},
			{Name: domain.FieldAbout, Type: domain.ColumnText},
		},
		Rows: [][]domain.Value{
			{
				domain.StringValue("Boulangerie; Martin"),
				domain.StringValue("01"),
				domain.FloatValue(1000),
				domain.IntValue(18),
				domain.StringValue("Artisan.\nDeux sites."),
			},
			{
				domain.StringValue("N/A"),
				domain.StringValue("69"),
				domain.FloatValue(2500.5),
				domain.IntValue(0),
				domain.StringValue("N/A"),
			},
		},
	}
}

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewWriter().Write(context.Background(), &buf, sampleDataset()))

	lines := strings.SplitN(buf.String(), "\n", 2)
	assert.Equal(t, "Project Name;Department;Montant Levé;Durée (value);A propos", lines[0])
	assert.Contains(t, buf.String(), `"Boulangerie; Martin";01;1000.0;18;"Artisan.`)
	assert.Contains(t, buf.String(), "N/A;69;2500.5;0;N/A\n")
}

func TestWriter_Format(t *testing.T) {
	assert.Equal(t, "csv", NewWriter().Format())
}

func TestWriter_NilDataset(t *testing.T) {
	err := NewWriter().Write(context.Background(), &bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoundTrip_ByteIdentical(t *testing.T) {
	ctx := context.Background()
	var first, second bytes.Buffer

	require.NoError(t, NewWriter().Write(ctx, &first, sampleDataset()))
	ds, err := NewReader().Read(ctx, bytes.NewReader(first.Bytes()), "first.csv")
	require.NoError(t, err)
	require.NoError(t, NewWriter().Write(ctx, &second, ds))

	assert.Equal(t, first.String(), second.String())
}

func TestReader_InfersTypes(t *testing.T) {
	input := "a;b;c;Department\n3;1.5;x;01\n4;2;N/A;02\n"

	ds, err := NewReader().Read(context.Background(), strings.NewReader(input), "t.csv")
	require.NoError(t, err)

	require.Equal(t, 2, ds.Len())
	assert.Equal(t, domain.ColumnInteger, ds.Columns[0].Type)
	assert.Equal(t, domain.ColumnFloat, ds.Columns[1].Type)
	assert.Equal(t, domain.ColumnText, ds.Columns[2].Type)
	assert.Equal(t, domain.ColumnInteger, ds.Columns[3].Type)

	v, _ := ds.Cell(1, "b")
	assert.Equal(t, domain.FloatValue(2), v)
	v, _ = ds.Cell(0, "Department")
	assert.Equal(t, domain.IntValue(1), v)

	ds, err = NewReader(WithTextColumns("Department")).Read(context.Background(), strings.NewReader(input), "t.csv")
	require.NoError(t, err)
	assert.Equal(t, domain.ColumnText, ds.Columns[3].Type)
	v, _ = ds.Cell(0, "Department")
	assert.Equal(t, "01", v.Text())
}

func TestReader_BOM(t *testing.T) {
	ds, err := NewReader().Read(context.Background(), strings.NewReader("\ufeffa;b\n1;2\n"), "t.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.ColumnNames())
}

func TestReader_HeaderOnly(t *testing.T) {
	ds, err := NewReader().Read(context.Background(), strings.NewReader("a;b\n"), "t.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Len(t, ds.Columns, 2)
}

func TestReader_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"empty", "", 0},
		{"too many fields", "a;b\n1;2\n1;2;3\n", 3},
		{"too few fields", "a;b\n1\n", 2},
		{"bare quote", "a;b\n1;x\"y\n", 2},
		{"unterminated quote", "a;b\n1;\"open\n", 0},
		{"duplicate header", "a;a\n1;2\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader().Read(context.Background(), strings.NewReader(tt.input), "bad.csv")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedTable)

			var te *domain.TableError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, "bad.csv", te.Path)
			if tt.line > 0 {
				assert.Equal(t, tt.line, te.Line)
			}
		})
	}
}

func TestReader_SkipMalformed(t *testing.T) {
	input := "a;b\n1;2\n1;2;3\n4;5\n"

	ds, err := NewReader(WithSkipMalformed()).Read(context.Background(), strings.NewReader(input), "t.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	v, _ := ds.Cell(1, "a")
	assert.Equal(t, domain.IntValue(4), v)
}

func TestReader_WithTextColumns(t *testing.T) {
	ds, err := NewReader(WithTextColumns("zip")).Read(context.Background(), strings.NewReader("zip\n01000\n"), "t.csv")
	require.NoError(t, err)

	v, _ := ds.Cell(0, "zip")
	assert.Equal(t, "01000", v.Text())
}
