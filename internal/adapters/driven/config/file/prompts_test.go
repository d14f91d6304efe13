package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driven"
)

func TestPromptStore_Load(t *testing.T) {
	t.Run("constructor performs no I/O", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "prompts")
		_, err := NewPromptStore(dir)
		require.NoError(t, err)

		_, err = os.Stat(dir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("first load creates defaults on disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "prompts")
		store, err := NewPromptStore(dir)
		require.NoError(t, err)

		prompt, err := store.Load(driven.PromptCoordinator)
		require.NoError(t, err)
		assert.Contains(t, prompt, "coordinate a team")

		for _, name := range driven.SpecialistPrompts() {
			_, statErr := os.Stat(filepath.Join(dir, name+".txt"))
			assert.NoError(t, statErr, "missing file for %s", name)
		}
		_, err = os.Stat(filepath.Join(dir, "README.md"))
		assert.NoError(t, err)
	})

	t.Run("user edits win over defaults", func(t *testing.T) {
		dir := t.TempDir()
		custom := "Custom planner instructions"
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, driven.PromptPlanner+".txt"), []byte(custom+"\n"), 0600))

		store, err := NewPromptStore(dir)
		require.NoError(t, err)

		prompt, err := store.Load(driven.PromptPlanner)
		require.NoError(t, err)
		assert.Equal(t, custom, prompt)
	})

	t.Run("unknown prompt without default errors", func(t *testing.T) {
		store, err := NewPromptStore(filepath.Join(t.TempDir(), "prompts"))
		require.NoError(t, err)

		_, err = store.Load("no_such_prompt")
		assert.Error(t, err)
	})

	t.Run("reload picks up edits", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewPromptStore(dir)
		require.NoError(t, err)

		first, err := store.Load(driven.PromptCritic)
		require.NoError(t, err)

		edited := "Edited critic prompt"
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, driven.PromptCritic+".txt"), []byte(edited), 0600))

		// Cached until reload.
		cached, err := store.Load(driven.PromptCritic)
		require.NoError(t, err)
		assert.Equal(t, first, cached)

		store.Reload()
		fresh, err := store.Load(driven.PromptCritic)
		require.NoError(t, err)
		assert.Equal(t, edited, fresh)
	})
}
