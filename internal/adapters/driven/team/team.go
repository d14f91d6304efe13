// Package team provides the thinking team collaborator: a coordinator
// model that synthesizes the findings of a roster of specialist models
// into a single response per thought.
package team

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/cogitate-labs/cogitate-cli/internal/core/domain"
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driven"
	"github.com/cogitate-labs/cogitate-cli/internal/logger"
)

// Ensure Team implements the interface.
var _ driven.TeamRunner = (*Team)(nil)

// Default configuration values.
const (
	DefaultMaxRetries        = 3
	DefaultRequestsPerSecond = 1.0

	// retryBaseDelay is the initial backoff between retry attempts.
	// Doubled on each subsequent attempt.
	retryBaseDelay = 500 * time.Millisecond

	// responseMaxTokens bounds each model response.
	responseMaxTokens = 2048
)

// Config holds configuration for the thinking team.
type Config struct {
	// Coordinator is the model that synthesizes the final response.
	Coordinator driven.LLMService

	// Specialist is the model used for each specialist pass. Optional;
	// when nil the coordinator alone handles the thought.
	Specialist driven.LLMService

	// Prompts supplies the coordinator and specialist role prompts.
	// Optional; built-in defaults are used when nil or on load failure.
	Prompts driven.PromptStore

	// MaxRetries bounds attempts per model call (default: 3).
	MaxRetries int

	// RequestsPerSecond throttles outbound model calls (default: 1).
	RequestsPerSecond float64
}

// Team coordinates specialist model passes and a coordinator synthesis
// for each thought prompt.
type Team struct {
	coordinator driven.LLMService
	specialist  driven.LLMService
	prompts     driven.PromptStore
	maxRetries  int
	retryDelay  time.Duration
	limiter     *rate.Limiter
}

// New creates a thinking team from config.
func New(cfg Config) (*Team, error) {
	if cfg.Coordinator == nil {
		return nil, fmt.Errorf("coordinator LLM is required")
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &Team{
		coordinator: cfg.Coordinator,
		specialist:  cfg.Specialist,
		prompts:     cfg.Prompts,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  retryBaseDelay,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}, nil
}

// Run processes one prompt: each specialist contributes its perspective,
// then the coordinator synthesizes them into the team response.
func (t *Team) Run(ctx context.Context, prompt string) (string, error) {
	runID := uuid.NewString()
	logger.Section("Team Run " + runID)

	findings, err := t.specialistPasses(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTeamUnavailable, err)
	}

	response, err := t.synthesize(ctx, prompt, findings)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTeamUnavailable, err)
	}

	logger.Debug("team run %s complete (%d specialist findings)", runID, len(findings))
	return response, nil
}

// Describe returns a short human-readable description of the team.
func (t *Team) Describe() string {
	if t.specialist == nil {
		return fmt.Sprintf("coordinator %s (no specialists)", t.coordinator.ModelName())
	}
	return fmt.Sprintf("coordinator %s with %d specialists on %s",
		t.coordinator.ModelName(), len(driven.SpecialistPrompts()), t.specialist.ModelName())
}

// Close releases the underlying model clients.
func (t *Team) Close() error {
	if t.specialist != nil {
		t.specialist.Close()
	}
	return t.coordinator.Close()
}

// finding is one specialist's contribution.
type finding struct {
	role    string
	content string
}

// specialistPasses runs every specialist over the prompt in roster order.
// A specialist failure aborts the run; partial rosters produce skewed
// syntheses.
func (t *Team) specialistPasses(ctx context.Context, prompt string) ([]finding, error) {
	if t.specialist == nil {
		return nil, nil
	}

	findings := make([]finding, 0, len(driven.SpecialistPrompts()))
	for _, name := range driven.SpecialistPrompts() {
		rolePrompt := t.loadPrompt(name)

		content, err := t.chatWithRetry(ctx, t.specialist, rolePrompt, prompt)
		if err != nil {
			return nil, fmt.Errorf("specialist %s: %w", roleLabel(name), err)
		}

		logger.Debug("specialist %s responded (%d chars)", roleLabel(name), len(content))
		findings = append(findings, finding{role: roleLabel(name), content: content})
	}
	return findings, nil
}

// synthesize asks the coordinator for the final response, given the
// prompt and any specialist findings.
func (t *Team) synthesize(ctx context.Context, prompt string, findings []finding) (string, error) {
	system := t.loadPrompt(driven.PromptCoordinator)
	if len(findings) > 0 {
		system += "\n\nYour team's roles:\n" + t.roster()
	}

	user := prompt
	if len(findings) > 0 {
		var b strings.Builder
		b.WriteString(prompt)
		b.WriteString("\n\nSpecialist findings:\n")
		for _, f := range findings {
			fmt.Fprintf(&b, "\n[%s]\n%s\n", f.role, f.content)
		}
		user = b.String()
	}

	return t.chatWithRetry(ctx, t.coordinator, system, user)
}

// chatWithRetry performs a rate-limited chat call with bounded retries
// and exponential backoff.
func (t *Team) chatWithRetry(ctx context.Context, svc driven.LLMService, system, user string) (string, error) {
	messages := []driven.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
	opts := driven.ChatOptions{MaxTokens: responseMaxTokens}

	var lastErr error
	for attempt := 1; attempt <= t.maxRetries; attempt++ {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}

		response, err := svc.Chat(ctx, messages, opts)
		if err == nil {
			return strings.TrimSpace(response), nil
		}
		lastErr = err
		logger.Warn("model call failed (attempt %d/%d): %v", attempt, t.maxRetries, err)

		if attempt < t.maxRetries {
			delay := t.retryDelay << (attempt - 1)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return "", fmt.Errorf("all %d attempts failed: %w", t.maxRetries, lastErr)
}

// roster renders the specialist role descriptions for the coordinator's
// system prompt.
func (t *Team) roster() string {
	var b strings.Builder
	for _, name := range driven.SpecialistPrompts() {
		fmt.Fprintf(&b, "- %s: %s\n", roleLabel(name), firstLine(t.loadPrompt(name)))
	}
	return b.String()
}

// loadPrompt loads a prompt from the store, falling back to the built-in
// default if unavailable.
func (t *Team) loadPrompt(name string) string {
	if t.prompts != nil {
		if prompt, err := t.prompts.Load(name); err == nil && prompt != "" {
			return prompt
		}
	}
	return defaultPrompts[name]
}

// roleLabel converts a prompt name to a display label,
// e.g. "specialist_planner" becomes "planner".
func roleLabel(name string) string {
	return strings.TrimPrefix(name, "specialist_")
}

// firstLine returns the first line of a prompt, used as its one-line
// role description in the roster.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}
