// Package services contains the core application services that sit
// between driving adapters (MCP, CLI) and driven adapters (LLM clients,
// config stores).
package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/cogitate-labs/cogitate-cli/internal/core/domain"
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driven"
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driving"
	"github.com/cogitate-labs/cogitate-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for team settings.
const (
	keyProvider   = "team.provider"
	keyTeamModel  = "team.team_model"
	keyAgentModel = "team.agent_model"
	keyBaseURL    = "team.base_url"
	keyAPIKey     = "team.api_key"
	keyMaxRetries = "team.max_retries"
)

// envProvider overrides the configured provider when set.
const envProvider = "LLM_PROVIDER"

// SettingsService resolves team settings from the config store, the
// environment, and built-in defaults, in that order of precedence.
type SettingsService struct {
	config driven.ConfigStore
}

// NewSettingsService creates a settings service backed by a config store.
func NewSettingsService(config driven.ConfigStore) *SettingsService {
	return &SettingsService{config: config}
}

// Get retrieves the current settings. Values missing from the config
// file fall back to environment variables, then to provider defaults.
func (s *SettingsService) Get() (*domain.TeamSettings, error) {
	settings := domain.DefaultTeamSettings()

	provider := s.resolveProvider()
	settings.Provider = provider
	settings.TeamModel = s.resolveModel(keyTeamModel, teamModelEnv(provider), domain.DefaultTeamModels()[provider])
	settings.AgentModel = s.resolveModel(keyAgentModel, agentModelEnv(provider), domain.DefaultAgentModels()[provider])
	settings.BaseURL = s.config.GetString(keyBaseURL)
	settings.APIKey = s.resolveAPIKey(provider)

	if retries := s.config.GetInt(keyMaxRetries); retries > 0 {
		settings.MaxRetries = retries
	}

	logger.Debug("settings resolved: provider=%s team_model=%s agent_model=%s",
		settings.Provider, settings.TeamModel, settings.AgentModel)

	return &settings, nil
}

// Save persists settings to the config store. The API key is only
// written when non-empty so environment credentials are not clobbered
// with blanks.
func (s *SettingsService) Save(settings *domain.TeamSettings) error {
	if settings == nil {
		return fmt.Errorf("settings must not be nil")
	}
	if !settings.Provider.IsValid() {
		return fmt.Errorf("invalid provider: %s", settings.Provider)
	}

	if err := s.config.Set(keyProvider, settings.Provider.String()); err != nil {
		return fmt.Errorf("failed to save provider: %w", err)
	}
	if err := s.config.Set(keyTeamModel, settings.TeamModel); err != nil {
		return fmt.Errorf("failed to save team model: %w", err)
	}
	if err := s.config.Set(keyAgentModel, settings.AgentModel); err != nil {
		return fmt.Errorf("failed to save agent model: %w", err)
	}
	if err := s.config.Set(keyBaseURL, settings.BaseURL); err != nil {
		return fmt.Errorf("failed to save base url: %w", err)
	}
	if settings.APIKey != "" {
		if err := s.config.Set(keyAPIKey, settings.APIKey); err != nil {
			return fmt.Errorf("failed to save api key: %w", err)
		}
	}
	if err := s.config.Set(keyMaxRetries, settings.MaxRetries); err != nil {
		return fmt.Errorf("failed to save max retries: %w", err)
	}

	return s.config.Save()
}

// SetProvider switches the active provider, filling model defaults for
// any empty model names.
func (s *SettingsService) SetProvider(provider domain.LLMProvider, teamModel, agentModel, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid provider: %s", provider)
	}

	if teamModel == "" {
		teamModel = domain.DefaultTeamModels()[provider]
	}
	if agentModel == "" {
		agentModel = domain.DefaultAgentModels()[provider]
	}

	settings := &domain.TeamSettings{
		Provider:   provider,
		TeamModel:  teamModel,
		AgentModel: agentModel,
		APIKey:     apiKey,
		MaxRetries: domain.DefaultTeamSettings().MaxRetries,
	}
	return s.Save(settings)
}

// Validate checks that the current settings describe a usable team.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Provider.IsValid() {
		return fmt.Errorf("invalid provider: %s", settings.Provider)
	}

	if settings.Provider == domain.ProviderGitHub {
		if err := domain.ValidateGitHubToken(settings.APIKey); err != nil {
			return err
		}
	} else if settings.Provider.RequiresAPIKey() && settings.APIKey == "" {
		env := settings.Provider.APIKeyEnv()
		return fmt.Errorf("no API key for provider %s: set %s or run 'cogitate settings provider'",
			settings.Provider, env)
	}

	return nil
}

// GetDefaults returns the built-in default settings.
func (s *SettingsService) GetDefaults() domain.TeamSettings {
	return domain.DefaultTeamSettings()
}

// resolveProvider picks the provider from config, then the LLM_PROVIDER
// environment variable, then the default. Unrecognised names fall back
// to the default.
func (s *SettingsService) resolveProvider() domain.LLMProvider {
	name := s.config.GetString(keyProvider)
	if name == "" {
		name = os.Getenv(envProvider)
	}

	provider := domain.LLMProvider(strings.ToLower(strings.TrimSpace(name)))
	if !provider.IsValid() {
		if name != "" {
			logger.Warn("unknown provider %q, falling back to %s", name, domain.DefaultTeamSettings().Provider)
		}
		return domain.DefaultTeamSettings().Provider
	}
	return provider
}

// resolveModel picks a model name from config, then an environment
// override, then the provider default.
func (s *SettingsService) resolveModel(configKey, envKey, fallback string) string {
	if model := s.config.GetString(configKey); model != "" {
		return model
	}
	if envKey != "" {
		if model := os.Getenv(envKey); model != "" {
			return model
		}
	}
	return fallback
}

// resolveAPIKey picks the credential from config, then the provider's
// environment variable.
func (s *SettingsService) resolveAPIKey(provider domain.LLMProvider) string {
	if key := s.config.GetString(keyAPIKey); key != "" {
		return key
	}
	if env := provider.APIKeyEnv(); env != "" {
		return os.Getenv(env)
	}
	return ""
}

// teamModelEnv returns the per-provider coordinator model override
// variable, e.g. DEEPSEEK_TEAM_MODEL_ID.
func teamModelEnv(provider domain.LLMProvider) string {
	return strings.ToUpper(provider.String()) + "_TEAM_MODEL_ID"
}

// agentModelEnv returns the per-provider specialist model override
// variable, e.g. DEEPSEEK_AGENT_MODEL_ID.
func agentModelEnv(provider domain.LLMProvider) string {
	return strings.ToUpper(provider.String()) + "_AGENT_MODEL_ID"
}
