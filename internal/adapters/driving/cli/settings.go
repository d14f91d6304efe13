package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cogitate-labs/cogitate-cli/internal/adapters/driven/ai"
	"github.com/cogitate-labs/cogitate-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the thinking team: LLM provider, models, and credentials.

Settings are stored in ~/.cogitate/config.toml. Environment variables
override missing values (LLM_PROVIDER, <PROVIDER>_API_KEY, and the
<PROVIDER>_TEAM_MODEL_ID / <PROVIDER>_AGENT_MODEL_ID pairs).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsProviderCmd = &cobra.Command{
	Use:   "provider <name>",
	Short: "Set the LLM provider",
	Long: `Set the LLM provider for the thinking team.

Available providers:
  deepseek    - DeepSeek (cloud)
  groq        - Groq (cloud)
  openrouter  - OpenRouter (cloud)
  ollama      - Ollama (local, no API key required)
  github      - GitHub Models (cloud, uses a GitHub token)
  openai      - OpenAI (cloud)

Model names default per provider and can be overridden with flags.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsProvider,
}

var settingsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current settings",
	Long:  `Check that the configured provider, credentials, and endpoint describe a reachable team.`,
	RunE:  runSettingsValidate,
}

func init() {
	settingsProviderCmd.Flags().String("team-model", "", "coordinator model (default per provider)")
	settingsProviderCmd.Flags().String("agent-model", "", "specialist model (default per provider)")
	settingsProviderCmd.Flags().String("api-key", "", "provider API key (defaults to the provider's environment variable)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsProviderCmd)
	settingsCmd.AddCommand(settingsValidateCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Team]")
	cmd.Printf("  Provider: %s\n", settings.Provider.Description())
	cmd.Printf("  Team Model: %s\n", settings.TeamModel)
	cmd.Printf("  Agent Model: %s\n", settings.AgentModel)
	if settings.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.BaseURL)
	}
	if settings.Provider.RequiresAPIKey() {
		if settings.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	cmd.Printf("  Max Retries: %d\n", settings.MaxRetries)

	status := "configured"
	if !settings.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)

	return nil
}

func runSettingsProvider(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	provider := domain.LLMProvider(strings.ToLower(strings.TrimSpace(args[0])))
	if !provider.IsValid() {
		return fmt.Errorf("unknown provider %q, expected one of: %s",
			args[0], providerNames())
	}

	teamModel, _ := cmd.Flags().GetString("team-model")
	agentModel, _ := cmd.Flags().GetString("agent-model")
	apiKey, _ := cmd.Flags().GetString("api-key")

	if err := settingsService.SetProvider(provider, teamModel, agentModel, apiKey); err != nil {
		return fmt.Errorf("failed to set provider: %w", err)
	}

	cmd.Printf("Provider set to %s\n", provider.Description())
	if provider.RequiresAPIKey() && apiKey == "" {
		cmd.Printf("No API key given; the %s environment variable will be used.\n", provider.APIKeyEnv())
	}
	return nil
}

func runSettingsValidate(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Validate(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Checking connectivity...")
	if err := ai.ValidateTeamConfig(settings); err != nil {
		return fmt.Errorf("connectivity check failed: %w", err)
	}

	cmd.Println("Settings are valid.")
	return nil
}

// maskAPIKey hides all but the first and last few characters of a key.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// providerNames renders the valid provider names for error messages.
func providerNames() string {
	providers := domain.AllLLMProviders()
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
