package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "sk-1234567890abcdef",
			expected: "sk-1...cdef",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestProviderNames(t *testing.T) {
	names := providerNames()
	assert.Contains(t, names, "deepseek")
	assert.Contains(t, names, "ollama")
	assert.Contains(t, names, "github")
}

func TestSettingsShowCmd(t *testing.T) {
	useMemoryServices(t)
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("DEEPSEEK_TEAM_MODEL_ID", "")
	t.Setenv("DEEPSEEK_AGENT_MODEL_ID", "")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[Team]")
	assert.Contains(t, out, "DeepSeek (cloud)")
	assert.Contains(t, out, "deepseek-chat")
	assert.Contains(t, out, "API Key: (not set)")
	assert.Contains(t, out, "Status: not configured")
}

func TestSettingsProviderCmd(t *testing.T) {
	t.Run("unknown provider is rejected", func(t *testing.T) {
		useMemoryServices(t)

		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"settings", "provider", "bogus"})
		defer func() {
			rootCmd.SetArgs(nil)
		}()

		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider")
	})

	t.Run("sets provider with model defaults", func(t *testing.T) {
		useMemoryServices(t)
		t.Setenv("LLM_PROVIDER", "")
		t.Setenv("OLLAMA_TEAM_MODEL_ID", "")
		t.Setenv("OLLAMA_AGENT_MODEL_ID", "")

		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetArgs([]string{"settings", "provider", "ollama"})
		defer func() {
			rootCmd.SetArgs(nil)
		}()

		err := rootCmd.Execute()
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Provider set to Ollama (local)")

		settings, err := settingsService.Get()
		require.NoError(t, err)
		assert.Equal(t, "ollama", settings.Provider.String())
		assert.Equal(t, "devstral:24b", settings.TeamModel)
	})

	t.Run("mentions the env variable when no key is given", func(t *testing.T) {
		useMemoryServices(t)

		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetArgs([]string{"settings", "provider", "groq"})
		defer func() {
			rootCmd.SetArgs(nil)
		}()

		err := rootCmd.Execute()
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "GROQ_API_KEY")
	})
}
