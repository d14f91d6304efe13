package services

import (
	"context"

	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driven"
)

// mockTeamRunner is a mock implementation of driven.TeamRunner.
type mockTeamRunner struct {
	response string
	err      error
	prompts  []string
}

var _ driven.TeamRunner = (*mockTeamRunner)(nil)

func (m *mockTeamRunner) Run(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockTeamRunner) Describe() string {
	return "mock team"
}

func (m *mockTeamRunner) Close() error {
	return nil
}
