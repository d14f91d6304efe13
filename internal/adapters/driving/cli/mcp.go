package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cogitate-labs/cogitate-cli/internal/adapters/driven/ai"
	"github.com/cogitate-labs/cogitate-cli/internal/adapters/driven/config/file"
	"github.com/cogitate-labs/cogitate-cli/internal/adapters/driven/team"
	"github.com/cogitate-labs/cogitate-cli/internal/adapters/driving/mcp"
	"github.com/cogitate-labs/cogitate-cli/internal/core/services"
	"github.com/cogitate-labs/cogitate-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  cogitate mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  cogitate mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "cogitate": {
        "command": "/path/to/cogitate",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	thinking, cleanup, err := buildThinkingService()
	if err != nil {
		return err
	}
	defer cleanup()

	ports := &mcp.Ports{
		Thinking: thinking,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// buildThinkingService assembles the full pipeline: settings, model
// clients, prompt store, team, and the thinking service on top.
func buildThinkingService() (*services.ThinkingService, func(), error) {
	if settingsService == nil {
		return nil, nil, errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get settings: %w", err)
	}

	coordinator, err := ai.CreateTeamLLM(settings)
	if err != nil {
		return nil, nil, err
	}

	specialist, err := ai.CreateAgentLLM(settings)
	if err != nil {
		coordinator.Close()
		return nil, nil, err
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		coordinator.Close()
		specialist.Close()
		return nil, nil, err
	}

	runner, err := team.New(team.Config{
		Coordinator: coordinator,
		Specialist:  specialist,
		Prompts:     promptStore,
		MaxRetries:  settings.MaxRetries,
	})
	if err != nil {
		coordinator.Close()
		specialist.Close()
		return nil, nil, err
	}

	logger.Info("thinking team ready: %s", runner.Describe())

	cleanup := func() {
		runner.Close() //nolint:errcheck
	}
	return services.NewThinkingService(runner), cleanup, nil
}
