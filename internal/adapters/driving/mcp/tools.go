package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cogitate-labs/cogitate-cli/internal/core/domain"
)

// defaultSessionID is used when the transport provides no session identity.
const defaultSessionID = "default"

// ThoughtInput is the input schema for the sequentialthinking tool.
type ThoughtInput struct {
	Thought           string `json:"thought" jsonschema:"the content of the current thought"`
	ThoughtNumber     int    `json:"thoughtNumber" jsonschema:"position in the sequence, starting at 1"`
	TotalThoughts     int    `json:"totalThoughts" jsonschema:"estimated total thoughts needed (minimum 5)"`
	NextThoughtNeeded bool   `json:"nextThoughtNeeded" jsonschema:"whether another thought is expected after this one"`
	IsRevision        bool   `json:"isRevision,omitempty" jsonschema:"whether this thought revises an earlier one"`
	RevisesThought    int    `json:"revisesThought,omitempty" jsonschema:"number of the thought being revised"`
	BranchFromThought int    `json:"branchFromThought,omitempty" jsonschema:"number of the thought this branch starts from"`
	BranchID          string `json:"branchId,omitempty" jsonschema:"identifier of the branch this thought belongs to"`
	NeedsMoreThoughts bool   `json:"needsMoreThoughts,omitempty" jsonschema:"whether the estimate should grow beyond totalThoughts"`
}

// ThoughtOutput is the output schema for the sequentialthinking tool.
type ThoughtOutput struct {
	Response          string         `json:"response"`
	ThoughtNumber     int            `json:"thoughtNumber"`
	TotalThoughts     int            `json:"totalThoughts"`
	NextThoughtNeeded bool           `json:"nextThoughtNeeded"`
	CurrentBranch     string         `json:"currentBranch"`
	Branches          map[string]int `json:"branches"`
	HistoryLength     int            `json:"historyLength"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "sequentialthinking",
		Description: "Process one thought in a sequential thinking chain. " +
			"Supports linear progression, revision of earlier thoughts, and branching " +
			"into alternative lines of reasoning. Each thought is analysed by a " +
			"team of reasoning specialists whose synthesis is returned.",
	}, s.handleThought)
}

// handleThought handles the sequentialthinking tool invocation.
// Validation failures are returned as errors; the SDK reports them as
// tool errors so the caller can correct the thought and retry.
func (s *Server) handleThought(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ThoughtInput,
) (*mcp.CallToolResult, ThoughtOutput, error) {
	fields := domain.ThoughtFields{
		Content:        input.Thought,
		Number:         input.ThoughtNumber,
		TotalThoughts:  input.TotalThoughts,
		NextNeeded:     input.NextThoughtNeeded,
		IsRevision:     input.IsRevision,
		RevisesThought: input.RevisesThought,
		BranchFrom:     input.BranchFromThought,
		BranchID:       input.BranchID,
		NeedsMore:      input.NeedsMoreThoughts,
	}

	result, err := s.ports.Thinking.ProcessThought(ctx, sessionID(req), fields)
	if err != nil {
		return nil, ThoughtOutput{}, err
	}

	output := ThoughtOutput{
		Response:          result.Response,
		ThoughtNumber:     result.Thought.Number,
		TotalThoughts:     result.Thought.TotalThoughts,
		NextThoughtNeeded: result.Thought.NextNeeded,
		CurrentBranch:     result.BranchLabel,
		Branches:          result.Branches,
		HistoryLength:     result.HistoryLength,
	}

	return nil, output, nil
}

// sessionID resolves the ledger key for a request. Stdio transports have
// a single anonymous session.
func sessionID(req *mcp.CallToolRequest) string {
	if req != nil && req.Session != nil && req.Session.ID() != "" {
		return req.Session.ID()
	}
	return defaultSessionID
}
