package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// LLMProvider identifies an LLM service provider for the thinking team.
type LLMProvider string

// Available LLM providers.
const (
	// ProviderDeepSeek is the DeepSeek cloud API.
	ProviderDeepSeek LLMProvider = "deepseek"

	// ProviderGroq is the Groq cloud API.
	ProviderGroq LLMProvider = "groq"

	// ProviderOpenRouter is the OpenRouter aggregation API.
	ProviderOpenRouter LLMProvider = "openrouter"

	// ProviderOllama is a local Ollama instance.
	ProviderOllama LLMProvider = "ollama"

	// ProviderGitHub is the GitHub Models API (authenticated with a PAT).
	ProviderGitHub LLMProvider = "github"

	// ProviderOpenAI is the OpenAI cloud API.
	ProviderOpenAI LLMProvider = "openai"
)

// IsValid returns true if the provider is recognised.
func (p LLMProvider) IsValid() bool {
	switch p {
	case ProviderDeepSeek, ProviderGroq, ProviderOpenRouter, ProviderOllama, ProviderGitHub, ProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key or token.
func (p LLMProvider) RequiresAPIKey() bool {
	return p != ProviderOllama
}

// IsLocal returns true if this provider runs locally.
func (p LLMProvider) IsLocal() bool {
	return p == ProviderOllama
}

// String returns the string representation.
func (p LLMProvider) String() string {
	return string(p)
}

// APIKeyEnv returns the environment variable conventionally holding this
// provider's credential, or "" when no credential is needed.
func (p LLMProvider) APIKeyEnv() string {
	switch p {
	case ProviderDeepSeek:
		return "DEEPSEEK_API_KEY"
	case ProviderGroq:
		return "GROQ_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	case ProviderGitHub:
		return "GITHUB_TOKEN"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}

// Description returns a human-readable description of the provider.
func (p LLMProvider) Description() string {
	switch p {
	case ProviderDeepSeek:
		return "DeepSeek (cloud)"
	case ProviderGroq:
		return "Groq (cloud)"
	case ProviderOpenRouter:
		return "OpenRouter (cloud)"
	case ProviderOllama:
		return "Ollama (local)"
	case ProviderGitHub:
		return "GitHub Models (cloud)"
	case ProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// AllLLMProviders returns every supported provider.
func AllLLMProviders() []LLMProvider {
	return []LLMProvider{
		ProviderDeepSeek,
		ProviderGroq,
		ProviderOpenRouter,
		ProviderOllama,
		ProviderGitHub,
		ProviderOpenAI,
	}
}

// DefaultBaseURLs returns the API endpoint for each provider. OpenAI uses
// the client library's default and is therefore empty here.
func DefaultBaseURLs() map[LLMProvider]string {
	return map[LLMProvider]string{
		ProviderDeepSeek:   "https://api.deepseek.com/v1",
		ProviderGroq:       "https://api.groq.com/openai/v1",
		ProviderOpenRouter: "https://openrouter.ai/api/v1",
		ProviderOllama:     "http://localhost:11434",
		ProviderGitHub:     "https://models.github.ai/inference",
		ProviderOpenAI:     "",
	}
}

// DefaultTeamModels returns the default coordinator model per provider.
func DefaultTeamModels() map[LLMProvider]string {
	return map[LLMProvider]string{
		ProviderDeepSeek:   "deepseek-chat",
		ProviderGroq:       "deepseek-r1-distill-llama-70b",
		ProviderOpenRouter: "meta-llama/llama-3.1-70b-instruct",
		ProviderOllama:     "devstral:24b",
		ProviderGitHub:     "openai/gpt-5",
		ProviderOpenAI:     "gpt-4o-mini",
	}
}

// DefaultAgentModels returns the default specialist model per provider.
func DefaultAgentModels() map[LLMProvider]string {
	return map[LLMProvider]string{
		ProviderDeepSeek:   "deepseek-chat",
		ProviderGroq:       "qwen-2.5-32b",
		ProviderOpenRouter: "meta-llama/llama-3.1-8b-instruct",
		ProviderOllama:     "devstral:24b",
		ProviderGitHub:     "openai/gpt-5-min",
		ProviderOpenAI:     "gpt-4o-mini",
	}
}

// TeamSettings holds configuration for the thinking team collaborator.
type TeamSettings struct {
	// Provider is the LLM service provider.
	Provider LLMProvider

	// TeamModel is the coordinator model name.
	TeamModel string

	// AgentModel is the specialist model name.
	AgentModel string

	// BaseURL is the API endpoint. Empty means the provider default.
	BaseURL string

	// APIKey is the credential for cloud providers.
	APIKey string

	// MaxRetries bounds retry attempts per team invocation.
	MaxRetries int
}

// IsConfigured returns true if the team collaborator is usable.
func (s TeamSettings) IsConfigured() bool {
	if !s.Provider.IsValid() {
		return false
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return false
	}
	return true
}

// DefaultTeamSettings returns settings with sensible defaults.
// The API key is left empty; it is resolved from the provider's
// environment variable or the config file by the settings service.
func DefaultTeamSettings() TeamSettings {
	provider := ProviderDeepSeek
	return TeamSettings{
		Provider:   provider,
		TeamModel:  DefaultTeamModels()[provider],
		AgentModel: DefaultAgentModels()[provider],
		MaxRetries: 3,
	}
}

// githubTokenPrefixes are the accepted GitHub token formats: classic PAT,
// fine-grained PAT, OAuth, and user-to-server tokens.
var githubTokenPrefixes = []string{"ghp_", "github_pat_", "gho_", "ghu_"}

// classicPATLength is the exact length of a classic ghp_ token.
const classicPATLength = 40

// ValidateGitHubToken checks that a GitHub Models credential looks like a
// real GitHub token before any request is made with it.
func ValidateGitHubToken(token string) error {
	if token == "" {
		return fmt.Errorf("github token is required but not provided")
	}

	valid := false
	for _, prefix := range githubTokenPrefixes {
		if strings.HasPrefix(token, prefix) {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid github token format: token must start with one of %s",
			strings.Join(githubTokenPrefixes, ", "))
	}

	if strings.HasPrefix(token, "ghp_") && len(token) != classicPATLength {
		return fmt.Errorf("invalid github classic PAT length: expected %d characters", classicPATLength)
	}

	return nil
}
