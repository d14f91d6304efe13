package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Argument length caps for the starter prompt.
const (
	maxProblemLength = 500
	maxContextLength = 300
)

// registerPrompts registers all prompt handlers with the MCP server.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "sequential-thinking",
		Description: "Start a sequential thinking process for a problem",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "problem",
				Description: "The problem to think through",
				Required:    true,
			},
			{
				Name:        "context",
				Description: "Additional context for the problem",
			},
		},
	}, s.handleStarterPrompt)
}

// handleStarterPrompt returns the starter messages for a thinking session:
// a user message initiating the process and an assistant message laying
// out the process guidelines.
func (s *Server) handleStarterPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	problem := truncate(strings.TrimSpace(req.Params.Arguments["problem"]), maxProblemLength)
	if problem == "" {
		return nil, fmt.Errorf("prompt argument %q is required", "problem")
	}
	promptContext := truncate(strings.TrimSpace(req.Params.Arguments["context"]), maxContextLength)

	userPrompt := "Initiate sequential thinking for: " + problem
	if promptContext != "" {
		userPrompt += "\nContext: " + promptContext
	}

	assistantGuide := fmt.Sprintf(`Starting sequential thinking process for: %s

Process Guidelines:
1. Estimate at least 5 total thoughts initially
2. Begin with: "Plan comprehensive analysis for: %s"
3. Use revisions (isRevision=true) to improve previous thoughts
4. Use branching (branchFromThought, branchId) to explore alternatives
5. Each thought should be detailed and explain reasoning

System Architecture:
- Multi-agent coordination team with specialized roles
- Planner, Researcher, Analyzer, Critic, and Synthesizer agents
- Comprehensive synthesis of specialist responses

Ready to begin systematic analysis.`, problem, problem)

	return &mcp.GetPromptResult{
		Description: "Sequential thinking starter with problem and guidelines",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: userPrompt},
			},
			{
				Role:    "assistant",
				Content: &mcp.TextContent{Text: assistantGuide},
			},
		},
	}, nil
}

// truncate caps a string at max bytes.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
