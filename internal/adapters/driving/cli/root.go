// Package cli provides the cobra command tree for the cogitate binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cogitate-labs/cogitate-cli/internal/adapters/driven/config/file"
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driven"
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driving"
	"github.com/cogitate-labs/cogitate-cli/internal/core/services"
	"github.com/cogitate-labs/cogitate-cli/internal/logger"
)

// version is set by Execute from the build-time version in main.
var version = "dev"

// Shared services, initialised once before any command runs.
var (
	configStore     driven.ConfigStore
	settingsService driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cogitate",
	Short: "Sequential thinking MCP server",
	Long: `Cogitate is a sequential thinking server for AI assistants.

It exposes a Model Context Protocol (MCP) tool that processes thoughts
one at a time through a team of reasoning specialists, supporting
revision of earlier thoughts and branching into alternative lines of
reasoning.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

// initServices wires the config store and settings service before any
// command runs. The team and thinking service are built per command
// because they depend on resolved settings.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if configStore == nil {
		store, err := file.NewConfigStore("")
		if err != nil {
			return err
		}
		configStore = store
	}
	if settingsService == nil {
		settingsService = services.NewSettingsService(configStore)
	}
	return nil
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}
