package driving

import "github.com/cogitate-labs/cogitate-cli/internal/core/domain"

// SettingsService manages team collaborator configuration.
type SettingsService interface {
	// Get retrieves current settings, applying config file values,
	// environment overrides, and defaults in that order.
	Get() (*domain.TeamSettings, error)

	// Save persists settings to the config store.
	Save(settings *domain.TeamSettings) error

	// SetProvider switches the LLM provider, filling model defaults for
	// any empty model names.
	SetProvider(provider domain.LLMProvider, teamModel, agentModel, apiKey string) error

	// Validate checks that the current settings describe a usable team.
	Validate() error

	// GetDefaults returns the built-in default settings.
	GetDefaults() domain.TeamSettings
}
