package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogitate-labs/cogitate-cli/internal/core/domain"
)

const testSession = "session-1"

// fields returns an admissible candidate for thought n in a chain of 5.
func fields(n int, content string) domain.ThoughtFields {
	return domain.ThoughtFields{
		Content:       content,
		Number:        n,
		TotalThoughts: 5,
		NextNeeded:    true,
	}
}

func TestThinkingService_ProcessThought(t *testing.T) {
	t.Run("standard thought flows through the team", func(t *testing.T) {
		team := &mockTeamRunner{response: "team synthesis"}
		svc := NewThinkingService(team)

		result, err := svc.ProcessThought(context.Background(), testSession, fields(1, "step one"))
		require.NoError(t, err)

		assert.Contains(t, result.Response, "team synthesis")
		assert.Equal(t, domain.BranchMain, result.BranchLabel)
		assert.Equal(t, 1, result.HistoryLength)
		assert.Empty(t, result.Branches)

		require.Len(t, team.prompts, 1)
		assert.Contains(t, team.prompts[0], "Process Thought #1:")
		assert.Contains(t, team.prompts[0], `Thought Content: "step one"`)
	})

	t.Run("guidance depends on next thought needed", func(t *testing.T) {
		team := &mockTeamRunner{response: "synthesis"}
		svc := NewThinkingService(team)

		cont, err := svc.ProcessThought(context.Background(), testSession, fields(1, "continuing"))
		require.NoError(t, err)
		assert.Contains(t, cont.Response, "Formulate the next logical thought.")

		final := fields(2, "concluding")
		final.NextNeeded = false
		done, err := svc.ProcessThought(context.Background(), testSession, final)
		require.NoError(t, err)
		assert.Contains(t, done.Response, "This is the final thought. Review the synthesis.")
		assert.NotContains(t, done.Response, "Formulate the next logical thought.")
	})

	t.Run("revision prompt includes the original content", func(t *testing.T) {
		team := &mockTeamRunner{response: "ok"}
		svc := NewThinkingService(team)

		_, err := svc.ProcessThought(context.Background(), testSession, fields(1, "flawed premise"))
		require.NoError(t, err)

		revision := fields(2, "corrected premise")
		revision.IsRevision = true
		revision.RevisesThought = 1

		_, err = svc.ProcessThought(context.Background(), testSession, revision)
		require.NoError(t, err)

		require.Len(t, team.prompts, 2)
		assert.Contains(t, team.prompts[1], `**REVISION of Thought #1** (Original: "flawed premise")`)
	})

	t.Run("branch prompt includes the origin content", func(t *testing.T) {
		team := &mockTeamRunner{response: "ok"}
		svc := NewThinkingService(team)

		_, err := svc.ProcessThought(context.Background(), testSession, fields(1, "main line"))
		require.NoError(t, err)

		branch := fields(2, "alternative")
		branch.BranchFrom = 1
		branch.BranchID = "alt"

		result, err := svc.ProcessThought(context.Background(), testSession, branch)
		require.NoError(t, err)

		assert.Contains(t, team.prompts[1], `**BRANCH (ID: alt) from Thought #1** (Origin: "main line")`)
		assert.Equal(t, "alt", result.BranchLabel)
		assert.Equal(t, map[string]int{"alt": 1}, result.Branches)
	})

	t.Run("revision of unknown thought uses the sentinel", func(t *testing.T) {
		team := &mockTeamRunner{response: "ok"}
		svc := NewThinkingService(team)

		revision := fields(3, "revising nothing")
		revision.IsRevision = true
		revision.RevisesThought = 2

		_, err := svc.ProcessThought(context.Background(), testSession, revision)
		require.NoError(t, err)
		assert.Contains(t, team.prompts[0], `(Original: "Unknown thought")`)
	})

	t.Run("validation failure leaves the ledger untouched", func(t *testing.T) {
		team := &mockTeamRunner{response: "never used"}
		svc := NewThinkingService(team)

		bad := fields(0, "")
		_, err := svc.ProcessThought(context.Background(), testSession, bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidThought)

		assert.Empty(t, team.prompts)
		assert.Empty(t, svc.History(testSession))
	})

	t.Run("team failure still records the thought", func(t *testing.T) {
		team := &mockTeamRunner{err: errors.New("provider down")}
		svc := NewThinkingService(team)

		_, err := svc.ProcessThought(context.Background(), testSession, fields(1, "asked anyway"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "team processing failed")

		history := svc.History(testSession)
		require.Len(t, history, 1)
		assert.Equal(t, "asked anyway", history[0].Content)
	})

	t.Run("nil team returns unavailable", func(t *testing.T) {
		svc := NewThinkingService(nil)
		_, err := svc.ProcessThought(context.Background(), testSession, fields(1, "anything"))
		assert.ErrorIs(t, err, domain.ErrTeamUnavailable)
	})

	t.Run("sessions keep independent ledgers", func(t *testing.T) {
		team := &mockTeamRunner{response: "ok"}
		svc := NewThinkingService(team)

		_, err := svc.ProcessThought(context.Background(), "a", fields(1, "in a"))
		require.NoError(t, err)
		_, err = svc.ProcessThought(context.Background(), "b", fields(1, "in b"))
		require.NoError(t, err)

		assert.Len(t, svc.History("a"), 1)
		assert.Len(t, svc.History("b"), 1)
		assert.Equal(t, []string{"a", "b"}, svc.Sessions())
	})
}

func TestThinkingService_Queries(t *testing.T) {
	t.Run("unknown session yields empty results", func(t *testing.T) {
		svc := NewThinkingService(&mockTeamRunner{})
		assert.Empty(t, svc.BranchSummary("nope"))
		assert.Nil(t, svc.History("nope"))
		assert.Empty(t, svc.Sessions())
	})

	t.Run("branch summary accumulates across calls", func(t *testing.T) {
		team := &mockTeamRunner{response: "ok"}
		svc := NewThinkingService(team)

		_, err := svc.ProcessThought(context.Background(), testSession, fields(1, "trunk"))
		require.NoError(t, err)

		for i, id := range []string{"alt", "alt", "other"} {
			branch := fields(i+2, "fork")
			branch.BranchFrom = 1
			branch.BranchID = id
			_, err := svc.ProcessThought(context.Background(), testSession, branch)
			require.NoError(t, err)
		}

		assert.Equal(t, map[string]int{"alt": 2, "other": 1}, svc.BranchSummary(testSession))
	})
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
