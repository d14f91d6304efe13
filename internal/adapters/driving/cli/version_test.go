package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cogitate-labs/cogitate-cli/internal/adapters/driven/storage/memory"
	"github.com/cogitate-labs/cogitate-cli/internal/core/services"
)

// useMemoryServices swaps the shared services for in-memory versions so
// command tests never touch the real home directory.
func useMemoryServices(t *testing.T) {
	t.Helper()
	originalStore := configStore
	originalSettings := settingsService

	configStore = memory.NewConfigStore()
	settingsService = services.NewSettingsService(configStore)

	t.Cleanup(func() {
		configStore = originalStore
		settingsService = originalSettings
	})
}

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	useMemoryServices(t)

	// Save and restore version
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "cogitate version test-version-1.0.0")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	useMemoryServices(t)

	// Save and restore version
	originalVersion := version
	version = "dev"
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "cogitate version dev")
}
