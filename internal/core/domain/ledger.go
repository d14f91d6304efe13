package domain

// ContentNotFound is the sentinel returned by FindContent when no thought
// carries the requested number. Lookups feed best-effort prompt context,
// so a miss is routine rather than an error.
const ContentNotFound = "Unknown thought"

// BranchMain is the label for thoughts on the main line of reasoning.
const BranchMain = "main"

// Ledger is the append-only, session-scoped store of admitted thoughts
// plus a derived index of branch membership.
//
// The ledger records thoughts in call order and never re-sorts by thought
// number; caller-supplied numbering is trusted beyond the per-thought
// construction rules. There is no deduplication and no deletion.
//
// A Ledger is owned by exactly one in-flight request at a time. Callers
// exposing it to concurrent requests must synchronize externally; the
// service layer guards its session map with a mutex for this reason.
type Ledger struct {
	history  []Thought
	branches map[string][]Thought
}

// NewLedger creates an empty ledger for a new session.
func NewLedger() *Ledger {
	return &Ledger{
		branches: make(map[string][]Thought),
	}
}

// Append records an admitted thought. It performs structural bookkeeping
// only: the thought must already have passed construction validation.
// When both branch fields are set, the thought is additionally indexed
// under its branch identifier, preserving insertion order.
func (l *Ledger) Append(t Thought) {
	l.history = append(l.history, t)

	if t.BranchFrom != 0 && t.BranchID != "" {
		l.branches[t.BranchID] = append(l.branches[t.BranchID], t)
	}
}

// FindContent returns the content of the earliest-appended thought with
// the given number, or ContentNotFound when no thought matches. Duplicate
// numbers are a caller-discipline issue, not a ledger invariant; the first
// insertion wins deterministically.
func (l *Ledger) FindContent(number int) string {
	for _, t := range l.history {
		if t.Number == number {
			return t.Content
		}
	}
	return ContentNotFound
}

// BranchSummary returns the number of thoughts indexed under each known
// branch identifier. Identifiers appear only once at least one thought
// references them, so the summary never contains zero counts.
func (l *Ledger) BranchSummary() map[string]int {
	summary := make(map[string]int, len(l.branches))
	for id, thoughts := range l.branches {
		summary[id] = len(thoughts)
	}
	return summary
}

// Branch returns the thoughts indexed under the given identifier, in
// insertion order. Returns nil when the branch is unknown.
func (l *Ledger) Branch(id string) []Thought {
	thoughts, ok := l.branches[id]
	if !ok {
		return nil
	}
	out := make([]Thought, len(thoughts))
	copy(out, thoughts)
	return out
}

// BranchLabel returns the thought's branch identifier when it forked from
// an earlier thought, and BranchMain otherwise. Revisions without branch
// fields label as BranchMain even when the thought they revise lives on a
// branch; branch membership does not propagate through revision edges.
func (l *Ledger) BranchLabel(t Thought) string {
	if t.BranchFrom != 0 {
		return t.BranchID
	}
	return BranchMain
}

// History returns a copy of the full thought history in insertion order.
func (l *Ledger) History() []Thought {
	out := make([]Thought, len(l.history))
	copy(out, l.history)
	return out
}

// Len returns the number of recorded thoughts.
func (l *Ledger) Len() int {
	return len(l.history)
}
