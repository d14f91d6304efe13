package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMProvider(t *testing.T) {
	t.Run("all listed providers are valid", func(t *testing.T) {
		for _, p := range AllLLMProviders() {
			assert.True(t, p.IsValid(), "provider %s should be valid", p)
		}
	})

	t.Run("unknown provider is invalid", func(t *testing.T) {
		assert.False(t, LLMProvider("anthropic").IsValid())
		assert.False(t, LLMProvider("").IsValid())
	})

	t.Run("only ollama is local and keyless", func(t *testing.T) {
		for _, p := range AllLLMProviders() {
			if p == ProviderOllama {
				assert.True(t, p.IsLocal())
				assert.False(t, p.RequiresAPIKey())
				assert.Empty(t, p.APIKeyEnv())
			} else {
				assert.False(t, p.IsLocal())
				assert.True(t, p.RequiresAPIKey())
				assert.NotEmpty(t, p.APIKeyEnv())
			}
		}
	})

	t.Run("github uses the token variable", func(t *testing.T) {
		assert.Equal(t, "GITHUB_TOKEN", ProviderGitHub.APIKeyEnv())
	})

	t.Run("descriptions cover every provider", func(t *testing.T) {
		for _, p := range AllLLMProviders() {
			assert.NotEqual(t, "Unknown", p.Description())
		}
		assert.Equal(t, "Unknown", LLMProvider("bogus").Description())
	})
}

func TestDefaultMaps(t *testing.T) {
	t.Run("every provider has defaults", func(t *testing.T) {
		baseURLs := DefaultBaseURLs()
		teamModels := DefaultTeamModels()
		agentModels := DefaultAgentModels()

		for _, p := range AllLLMProviders() {
			_, ok := baseURLs[p]
			assert.True(t, ok, "missing base URL for %s", p)
			assert.NotEmpty(t, teamModels[p], "missing team model for %s", p)
			assert.NotEmpty(t, agentModels[p], "missing agent model for %s", p)
		}
	})

	t.Run("openai uses the client default endpoint", func(t *testing.T) {
		assert.Empty(t, DefaultBaseURLs()[ProviderOpenAI])
	})
}

func TestTeamSettings_IsConfigured(t *testing.T) {
	t.Run("cloud provider needs a key", func(t *testing.T) {
		settings := TeamSettings{Provider: ProviderDeepSeek}
		assert.False(t, settings.IsConfigured())

		settings.APIKey = "sk-something"
		assert.True(t, settings.IsConfigured())
	})

	t.Run("ollama needs no key", func(t *testing.T) {
		settings := TeamSettings{Provider: ProviderOllama}
		assert.True(t, settings.IsConfigured())
	})

	t.Run("invalid provider is never configured", func(t *testing.T) {
		settings := TeamSettings{Provider: "bogus", APIKey: "key"}
		assert.False(t, settings.IsConfigured())
	})
}

func TestDefaultTeamSettings(t *testing.T) {
	settings := DefaultTeamSettings()
	assert.Equal(t, ProviderDeepSeek, settings.Provider)
	assert.Equal(t, "deepseek-chat", settings.TeamModel)
	assert.Equal(t, "deepseek-chat", settings.AgentModel)
	assert.Equal(t, 3, settings.MaxRetries)
	assert.Empty(t, settings.APIKey)
}

func TestValidateGitHubToken(t *testing.T) {
	t.Run("empty token is rejected", func(t *testing.T) {
		err := ValidateGitHubToken("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("classic PAT with correct length is accepted", func(t *testing.T) {
		token := "ghp_" + strings.Repeat("a", 36)
		require.Len(t, token, 40)
		assert.NoError(t, ValidateGitHubToken(token))
	})

	t.Run("classic PAT with wrong length is rejected", func(t *testing.T) {
		err := ValidateGitHubToken("ghp_tooshort")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "length")
	})

	t.Run("fine-grained, oauth, and user tokens are accepted", func(t *testing.T) {
		for _, token := range []string{
			"github_pat_" + strings.Repeat("b", 60),
			"gho_" + strings.Repeat("c", 20),
			"ghu_" + strings.Repeat("d", 20),
		} {
			assert.NoError(t, ValidateGitHubToken(token), "token %s", token)
		}
	})

	t.Run("unknown prefix is rejected", func(t *testing.T) {
		err := ValidateGitHubToken("sk-not-a-github-token")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "format")
	})
}
