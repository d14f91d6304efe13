package team

import (
	"context"
	"fmt"

	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driven"
)

// mockLLM is a mock implementation of driven.LLMService.
type mockLLM struct {
	name string

	// response is returned from Chat; when responseFn is set it wins.
	response   string
	responseFn func(messages []driven.ChatMessage) (string, error)

	// failures makes the first N Chat calls fail.
	failures int

	calls  int
	closed bool
}

var _ driven.LLMService = (*mockLLM)(nil)

func (m *mockLLM) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	return m.response, nil
}

func (m *mockLLM) Chat(_ context.Context, messages []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	m.calls++
	if m.failures > 0 {
		m.failures--
		return "", fmt.Errorf("transient failure")
	}
	if m.responseFn != nil {
		return m.responseFn(messages)
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string {
	return m.name
}

func (m *mockLLM) Ping(_ context.Context) error {
	return nil
}

func (m *mockLLM) Close() error {
	m.closed = true
	return nil
}
