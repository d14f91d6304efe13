package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Cogitate resources.
	uriScheme = "cogitate://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing thinking sessions.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sessions",
		Name:        "sessions",
		Description: "List of active thinking sessions",
		MIMEType:    "application/json",
	}, s.handleSessionsResource)

	// Template for a session's branch summary.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sessions/{sessionId}/branches",
		Name:        "session-branches",
		Description: "Branch summary for a specific thinking session",
		MIMEType:    "application/json",
	}, s.handleBranchesResource)

	// Template for a session's thought history.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sessions/{sessionId}/history",
		Name:        "session-history",
		Description: "Thought history for a specific thinking session",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleSessionsResource returns the list of known session identifiers.
func (s *Server) handleSessionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	sessions := s.ports.Thinking.Sessions()
	if sessions == nil {
		sessions = []string{}
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sessions: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleBranchesResource returns the branch summary for a session.
func (s *Server) handleBranchesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractSessionID(req.Params.URI, "/branches")
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(s.ports.Thinking.BranchSummary(id), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling branches: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource returns the thought history for a session.
func (s *Server) handleHistoryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractSessionID(req.Params.URI, "/history")
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	history := s.ports.Thinking.History(id)

	// Build simplified thought list.
	type thoughtInfo struct {
		Number  int    `json:"number"`
		Type    string `json:"type"`
		Content string `json:"content"`
	}

	infos := make([]thoughtInfo, len(history))
	for i := range history {
		infos[i] = thoughtInfo{
			Number:  history[i].Number,
			Type:    history[i].Type().String(),
			Content: history[i].Content,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSessionID extracts the session ID from a URI like
// cogitate://sessions/{sessionId}/branches.
func extractSessionID(uri, suffix string) string {
	const prefix = uriScheme + "sessions/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
