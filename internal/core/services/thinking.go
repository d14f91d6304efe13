package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cogitate-labs/cogitate-cli/internal/core/domain"
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driven"
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driving"
	"github.com/cogitate-labs/cogitate-cli/internal/logger"
)

// Ensure ThinkingService implements the interface.
var _ driving.ThinkingService = (*ThinkingService)(nil)

// Guidance trailers appended to the team response depending on whether
// the caller expects to continue.
const (
	guidanceNext = "\n\nGuidance: Look for revision/branch recommendations in the response. " +
		"Formulate the next logical thought."
	guidanceFinal = "\n\nThis is the final thought. Review the synthesis."
)

// ThinkingService admits thoughts into per-session ledgers and routes
// them through the team collaborator.
//
// Each ledger is single-writer by design; the mutex here only guards the
// session map and ledger access across concurrently served MCP sessions.
type ThinkingService struct {
	team driven.TeamRunner

	mu       sync.Mutex
	sessions map[string]*domain.Ledger
}

// NewThinkingService creates a thinking service bound to one team
// collaborator. Ledgers are created lazily per session.
func NewThinkingService(team driven.TeamRunner) *ThinkingService {
	return &ThinkingService{
		team:     team,
		sessions: make(map[string]*domain.Ledger),
	}
}

// NewSessionID returns a fresh identifier for callers that have no
// transport-level session, such as one-shot CLI invocations.
func NewSessionID() string {
	return uuid.NewString()
}

// ProcessThought validates the candidate fields, records the admitted
// thought, invokes the team, and returns the response with guidance.
//
// The thought is appended before the team call: history records what was
// asked, so a collaborator failure leaves the thought in the ledger and
// surfaces the error to the caller.
func (s *ThinkingService) ProcessThought(
	ctx context.Context,
	sessionID string,
	fields domain.ThoughtFields,
) (*driving.ThoughtResult, error) {
	if s.team == nil {
		return nil, domain.ErrTeamUnavailable
	}

	thought, err := domain.NewThought(fields)
	if err != nil {
		return nil, fmt.Errorf("validate thought: %w", err)
	}

	logger.Debug("session %s: %s", sessionID, thought.FormatForLog())

	// Record first, then build the prompt from ledger context; both under
	// the session lock so concurrent sessions cannot interleave.
	s.mu.Lock()
	led := s.ledgerLocked(sessionID)
	led.Append(thought)
	prompt := buildPrompt(led, thought)
	branches := led.BranchSummary()
	label := led.BranchLabel(thought)
	historyLen := led.Len()
	s.mu.Unlock()

	response, err := s.team.Run(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("team processing failed: %w", err)
	}

	if thought.NextNeeded {
		response += guidanceNext
	} else {
		response += guidanceFinal
	}

	logger.Info("processed %s thought #%d (session %s, branch %s)",
		thought.Type(), thought.Number, sessionID, label)

	return &driving.ThoughtResult{
		Thought:       thought,
		Response:      response,
		BranchLabel:   label,
		Branches:      branches,
		HistoryLength: historyLen,
	}, nil
}

// BranchSummary returns per-branch thought counts for a session.
func (s *ThinkingService) BranchSummary(sessionID string) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	led, ok := s.sessions[sessionID]
	if !ok {
		return map[string]int{}
	}
	return led.BranchSummary()
}

// History returns the session's thought history in insertion order.
func (s *ThinkingService) History(sessionID string) []domain.Thought {
	s.mu.Lock()
	defer s.mu.Unlock()

	led, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	return led.History()
}

// Sessions returns the known session identifiers, sorted for stable output.
func (s *ThinkingService) Sessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ledgerLocked returns the session's ledger, creating it on first use.
// Caller must hold s.mu.
func (s *ThinkingService) ledgerLocked(sessionID string) *domain.Ledger {
	led, ok := s.sessions[sessionID]
	if !ok {
		led = domain.NewLedger()
		s.sessions[sessionID] = led
		logger.Debug("session %s: ledger created", sessionID)
	}
	return led
}

// buildPrompt assembles the collaborator prompt for one thought: a header
// naming the sequence number, an optional revision/branch context line
// resolved through the ledger, then the thought content. Context always
// precedes content.
func buildPrompt(led *domain.Ledger, t domain.Thought) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Process Thought #%d:\n", t.Number)

	switch {
	case t.IsRevision && t.RevisesThought != 0:
		fmt.Fprintf(&b, "**REVISION of Thought #%d** (Original: %q)\n",
			t.RevisesThought, led.FindContent(t.RevisesThought))
	case t.BranchFrom != 0 && t.BranchID != "":
		fmt.Fprintf(&b, "**BRANCH (ID: %s) from Thought #%d** (Origin: %q)\n",
			t.BranchID, t.BranchFrom, led.FindContent(t.BranchFrom))
	}

	fmt.Fprintf(&b, "\nThought Content: %q", t.Content)
	return b.String()
}
