package driving

import (
	"context"

	"github.com/cogitate-labs/cogitate-cli/internal/core/domain"
)

// ThinkingService drives the sequential thinking process: it admits
// candidate thoughts into a session ledger and routes them through the
// team collaborator.
type ThinkingService interface {
	// ProcessThought validates the candidate fields, records the admitted
	// thought in the session's ledger, invokes the team with a prompt
	// derived from the thought and ledger context, and returns the
	// team's response together with branch metadata.
	//
	// On validation failure the session ledger is untouched and the error
	// unwraps to domain.ErrInvalidThought.
	ProcessThought(ctx context.Context, sessionID string, fields domain.ThoughtFields) (*ThoughtResult, error)

	// BranchSummary returns per-branch thought counts for a session.
	// Unknown sessions yield an empty summary.
	BranchSummary(sessionID string) map[string]int

	// History returns the session's thought history in insertion order.
	History(sessionID string) []domain.Thought

	// Sessions returns the known session identifiers.
	Sessions() []string
}

// ThoughtResult is the outcome of processing one thought.
type ThoughtResult struct {
	// Thought is the admitted, immutable record.
	Thought domain.Thought

	// Response is the team's synthesized answer with guidance appended.
	Response string

	// BranchLabel is the branch the thought landed on ("main" for the trunk).
	BranchLabel string

	// Branches maps branch identifiers to thought counts after this call.
	Branches map[string]int

	// HistoryLength is the ledger size after this call.
	HistoryLength int
}
