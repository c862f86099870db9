package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

const (
	uriScheme = "crowdlend://"

	// recentRuns caps the run list resource.
	recentRuns = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recent extraction runs, most recent first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "One extraction run with its document outcomes",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Runs == nil {
		return jsonResult(req.Params.URI, []RunOutput{})
	}

	runs, err := s.ports.Runs.List(ctx, recentRuns)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	infos := make([]RunOutput, len(runs))
	for i := range runs {
		infos[i] = runOutput(&runs[i], nil)
	}
	return jsonResult(req.Params.URI, infos)
}

func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Runs == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	run, outcomes, err := s.ports.Runs.Get(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}

	type outcomeInfo struct {
		URI         string `json:"uri"`
		Name        string `json:"name,omitempty"`
		Status      string `json:"status"`
		Fields      int    `json:"fields"`
		FieldErrors int    `json:"field_errors"`
		Message     string `json:"message,omitempty"`
	}
	detail := struct {
		RunOutput
		Outcomes []outcomeInfo `json:"outcomes"`
	}{RunOutput: runOutput(run, outcomes), Outcomes: make([]outcomeInfo, len(outcomes))}

	for i, o := range outcomes {
		detail.Outcomes[i] = outcomeInfo{
			URI:         o.URI,
			Name:        o.Name,
			Status:      string(o.Status),
			Fields:      o.Fields,
			FieldErrors: o.FieldErrors,
			Message:     o.Message,
		}
	}
	return jsonResult(req.Params.URI, detail)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like crowdlend://runs/{runId}.
func extractRunID(uri string) string {
	rest, ok := strings.CutPrefix(uri, uriScheme+"runs/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}
