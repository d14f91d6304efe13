// Package ai provides factory functions for creating LLM service adapters
// from team settings.
package ai

import (
	"context"
	"fmt"
	"time"

	ollamallm "github.com/cogitate-labs/cogitate-cli/internal/adapters/driven/llm/ollama"
	openaillm "github.com/cogitate-labs/cogitate-cli/internal/adapters/driven/llm/openai"
	"github.com/cogitate-labs/cogitate-cli/internal/core/domain"
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateTeamLLM creates the coordinator LLM service based on settings.
func CreateTeamLLM(settings *domain.TeamSettings) (driven.LLMService, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings must not be nil")
	}
	return createLLM(settings, settings.TeamModel)
}

// CreateAgentLLM creates the specialist LLM service based on settings.
func CreateAgentLLM(settings *domain.TeamSettings) (driven.LLMService, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings must not be nil")
	}
	return createLLM(settings, settings.AgentModel)
}

// CreateAndValidateTeamLLM creates the coordinator LLM service and
// validates connectivity with a short ping.
func CreateAndValidateTeamLLM(settings *domain.TeamSettings) (driven.LLMService, error) {
	svc, err := CreateTeamLLM(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'cogitate settings provider' to fix",
			domain.ErrTeamUnavailable, err)
	}

	// Validate connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'cogitate settings provider' to fix",
			domain.ErrTeamUnavailable, err)
	}

	return svc, nil
}

// ValidateTeamConfig validates a team configuration by creating a service
// and pinging it. Intended for the settings commands to validate
// credentials when they are configured.
func ValidateTeamConfig(settings *domain.TeamSettings) error {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}

	svc, err := CreateTeamLLM(settings)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// createLLM creates an LLM service for the given model based on the
// provider in settings. All cloud providers speak the OpenAI chat
// completion API; Ollama has its own local API.
func createLLM(settings *domain.TeamSettings, model string) (driven.LLMService, error) {
	if !settings.Provider.IsValid() {
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}

	if settings.Provider == domain.ProviderOllama {
		return ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL: baseURL(settings),
			Model:   model,
		}), nil
	}

	if settings.Provider == domain.ProviderGitHub {
		if err := domain.ValidateGitHubToken(settings.APIKey); err != nil {
			return nil, err
		}
	} else if settings.Provider.RequiresAPIKey() && settings.APIKey == "" {
		return nil, fmt.Errorf("no API key for provider %s: set %s",
			settings.Provider, settings.Provider.APIKeyEnv())
	}

	return openaillm.NewLLMService(openaillm.LLMConfig{
		APIKey:  settings.APIKey,
		BaseURL: baseURL(settings),
		Model:   model,
	}), nil
}

// baseURL resolves the endpoint: an explicit setting wins, otherwise the
// provider default.
func baseURL(settings *domain.TeamSettings) string {
	if settings.BaseURL != "" {
		return settings.BaseURL
	}
	return domain.DefaultBaseURLs()[settings.Provider]
}
