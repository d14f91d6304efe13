package mcp

import (
	"context"

	"github.com/cogitate-labs/cogitate-cli/internal/core/domain"
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driving"
)

// mockThinkingService is a mock implementation of driving.ThinkingService.
type mockThinkingService struct {
	result   *driving.ThoughtResult
	history  []domain.Thought
	branches map[string]int
	sessions []string
	err      error

	lastSessionID string
	lastFields    domain.ThoughtFields
}

func (m *mockThinkingService) ProcessThought(
	_ context.Context,
	sessionID string,
	fields domain.ThoughtFields,
) (*driving.ThoughtResult, error) {
	m.lastSessionID = sessionID
	m.lastFields = fields
	return m.result, m.err
}

func (m *mockThinkingService) BranchSummary(_ string) map[string]int {
	return m.branches
}

func (m *mockThinkingService) History(_ string) []domain.Thought {
	return m.history
}

func (m *mockThinkingService) Sessions() []string {
	return m.sessions
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.TeamSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.TeamSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.TeamSettings) error {
	return m.err
}

func (m *mockSettingsService) SetProvider(_ domain.LLMProvider, _, _, _ string) error {
	return m.err
}

func (m *mockSettingsService) Validate() error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.TeamSettings {
	return domain.DefaultTeamSettings()
}
