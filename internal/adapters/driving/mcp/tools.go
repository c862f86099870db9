package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
)

// ExtractTextInput is the input schema for the extract_text tool.
type ExtractTextInput struct {
	Text string `json:"text" jsonschema:"the project page text"`
	Name string `json:"name,omitempty" jsonschema:"document name written to the file_name field"`
}

// ExtractTextOutput is the output schema for the extract_text tool.
type ExtractTextOutput struct {
	Fields      []FieldOutput `json:"fields"`
	FieldErrors []string      `json:"field_errors,omitempty"`
}

// FieldOutput is one field of a normalised record.
type FieldOutput struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// RunExtractionInput is the input schema for the run_extraction tool.
type RunExtractionInput struct {
	Root          string   `json:"root" jsonschema:"directory holding the project page dumps"`
	Output        string   `json:"output,omitempty" jsonschema:"table to write; empty extracts without writing"`
	Format        string   `json:"format,omitempty" jsonschema:"csv or xlsx (default from the output extension)"`
	Limit         int      `json:"limit,omitempty" jsonschema:"maximum number of documents to read"`
	Extensions    []string `json:"extensions,omitempty" jsonschema:"file extensions to read; empty reads every file"`
	IncludeHidden bool     `json:"include_hidden,omitempty" jsonschema:"also read dot-files"`
}

// RunOutput summarises an extraction run.
type RunOutput struct {
	ID                 string   `json:"id"`
	Status             string   `json:"status"`
	Root               string   `json:"root"`
	Output             string   `json:"output,omitempty"`
	Format             string   `json:"format,omitempty"`
	StartedAt          string   `json:"started_at"`
	DurationMS         int64    `json:"duration_ms"`
	DocumentsSeen      int      `json:"documents_seen"`
	DocumentsExtracted int      `json:"documents_extracted"`
	DocumentsSkipped   int      `json:"documents_skipped"`
	FieldErrors        int      `json:"field_errors"`
	Rows               int      `json:"rows"`
	Columns            int      `json:"columns"`
	Checksum           string   `json:"checksum,omitempty"`
	Error              string   `json:"error,omitempty"`
	Skipped            []string `json:"skipped,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_text",
		Description: "Extract and normalise the fields of one crowd-lending project page",
	}, s.handleExtractText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run_extraction",
		Description: "Extract every project page under a directory into a table",
	}, s.handleRunExtraction)
}

func (s *Server) handleExtractText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractTextInput,
) (*mcp.CallToolResult, ExtractTextOutput, error) {
	if input.Text == "" {
		return nil, ExtractTextOutput{}, fmt.Errorf("text: %w", domain.ErrInvalidInput)
	}

	rec, fieldErrs, err := s.ports.Extraction.ExtractText(ctx, input.Name, input.Text)
	if err != nil {
		return nil, ExtractTextOutput{}, err
	}

	output := ExtractTextOutput{Fields: recordFields(rec)}
	for _, fe := range fieldErrs {
		output.FieldErrors = append(output.FieldErrors, fe.Error())
	}
	return nil, output, nil
}

func (s *Server) handleRunExtraction(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunExtractionInput,
) (*mcp.CallToolResult, RunOutput, error) {
	if input.Root == "" {
		return nil, RunOutput{}, fmt.Errorf("root: %w", domain.ErrInvalidInput)
	}

	res, err := s.ports.Extraction.Run(ctx, driving.RunRequest{
		Root:   input.Root,
		Output: input.Output,
		Format: input.Format,
		Discovery: domain.DiscoveryOptions{
			SkipHidden: !input.IncludeHidden,
			Extensions: input.Extensions,
			Limit:      input.Limit,
		},
	})
	if err != nil {
		return nil, RunOutput{}, err
	}

	return nil, runOutput(res.Run, res.Outcomes), nil
}

func recordFields(rec *domain.Record) []FieldOutput {
	fields := make([]FieldOutput, 0, rec.Len())
	for _, name := range rec.Fields() {
		v, _ := rec.Get(name)
		fields = append(fields, FieldOutput{Name: name, Type: v.Kind().String(), Value: jsonValue(v)})
	}
	return fields
}

func jsonValue(v domain.Value) any {
	switch v.Kind() {
	case domain.KindInt:
		i, _ := v.Int()
		return i
	case domain.KindFloat:
		f, _ := v.Float()
		return f
	default:
		return v.Text()
	}
}

func runOutput(run *domain.Run, outcomes []domain.DocumentOutcome) RunOutput {
	out := RunOutput{
		ID:                 run.ID,
		Status:             string(run.Status),
		Root:               run.Root,
		Output:             run.Output,
		Format:             run.Format,
		StartedAt:          run.StartedAt.UTC().Format("2006-01-02T15:04:05Z"),
		DurationMS:         run.Duration().Milliseconds(),
		DocumentsSeen:      run.DocumentsSeen,
		DocumentsExtracted: run.DocumentsExtracted,
		DocumentsSkipped:   run.DocumentsSkipped,
		FieldErrors:        run.FieldErrors,
		Rows:               run.Rows,
		Columns:            run.Columns,
		Checksum:           run.Checksum,
		Error:              run.Error,
	}
	for _, o := range outcomes {
		if o.Status == domain.OutcomeSkipped {
			out.Skipped = append(out.Skipped, o.URI)
		}
	}
	return out
}
