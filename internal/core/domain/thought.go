package domain

import (
	"fmt"
	"strings"
)

// MinTotalThoughts is the minimum accepted estimate for the total number
// of thoughts in a process. Estimates below it are rejected outright,
// never clamped, so behaviour stays deterministic and replayable.
const MinTotalThoughts = 5

// ThoughtType classifies a thought by its workflow role.
type ThoughtType string

// Available thought types.
const (
	// ThoughtStandard is a regular step in the main line of reasoning.
	ThoughtStandard ThoughtType = "standard"

	// ThoughtRevision supersedes an earlier thought.
	ThoughtRevision ThoughtType = "revision"

	// ThoughtBranch forks an alternative continuation from an earlier thought.
	ThoughtBranch ThoughtType = "branch"
)

// String returns the string representation.
func (t ThoughtType) String() string {
	return string(t)
}

// ThoughtFields is the raw candidate field set for one thought, as
// received from the tool boundary before any validation has run.
//
// Optional integer fields use 0 to mean "unset"; every valid value is >= 1.
// The optional BranchID uses "" to mean unset.
type ThoughtFields struct {
	// Content is the text of the thinking step.
	Content string

	// Number is the position in the logical chain, assigned by the caller.
	Number int

	// TotalThoughts is the caller's current estimate of the whole process.
	TotalThoughts int

	// NextNeeded reports whether the caller intends to submit another thought.
	NextNeeded bool

	// IsRevision marks this thought as superseding an earlier one.
	IsRevision bool

	// RevisesThought is the number of the thought being revised (0 = unset).
	RevisesThought int

	// BranchFrom is the number of the thought this one forks from (0 = unset).
	BranchFrom int

	// BranchID tags the fork with a branch identifier ("" = unset).
	BranchID string

	// NeedsMore signals the estimate is expected to be extended later.
	NeedsMore bool
}

// Thought is one immutable step in a sequential reasoning chain.
// Construct via NewThought; a Thought is validated once at construction
// and never mutated afterwards. The Ledger stores thoughts by value.
type Thought struct {
	// Content is the trimmed text of the thinking step.
	Content string

	// Number is the caller-assigned position in the chain (>= 1).
	Number int

	// TotalThoughts is the estimated process length (>= MinTotalThoughts).
	TotalThoughts int

	// NextNeeded reports whether another thought is expected to follow.
	NextNeeded bool

	// IsRevision marks this thought as superseding an earlier one.
	IsRevision bool

	// RevisesThought is the number being revised (0 = unset).
	RevisesThought int

	// BranchFrom is the fork origin number (0 = unset).
	BranchFrom int

	// BranchID is the trimmed branch identifier ("" = unset).
	BranchID string

	// NeedsMore signals the estimate is expected to grow.
	NeedsMore bool
}

// NewThought trims the candidate fields, runs the full validation rule
// list, and constructs an immutable Thought. When any rule is violated it
// returns a ValidationError aggregating every violation; no Thought is
// produced and no ledger mutation should follow.
func NewThought(fields ThoughtFields) (Thought, error) {
	fields.Content = strings.TrimSpace(fields.Content)
	fields.BranchID = strings.TrimSpace(fields.BranchID)

	if violations := Validate(fields); len(violations) > 0 {
		return Thought{}, &ValidationError{Violations: violations}
	}

	return Thought{
		Content:        fields.Content,
		Number:         fields.Number,
		TotalThoughts:  fields.TotalThoughts,
		NextNeeded:     fields.NextNeeded,
		IsRevision:     fields.IsRevision,
		RevisesThought: fields.RevisesThought,
		BranchFrom:     fields.BranchFrom,
		BranchID:       fields.BranchID,
		NeedsMore:      fields.NeedsMore,
	}, nil
}

// Type derives the mutually exclusive classification of the thought.
// Revision takes precedence over Branch when both field groups are set.
func (t Thought) Type() ThoughtType {
	switch {
	case t.IsRevision:
		return ThoughtRevision
	case t.BranchFrom != 0:
		return ThoughtBranch
	default:
		return ThoughtStandard
	}
}

// FormatForLog returns a one-line summary with a type-specific prefix,
// suitable for verbose logging.
func (t Thought) FormatForLog() string {
	var prefix string
	switch t.Type() {
	case ThoughtRevision:
		prefix = fmt.Sprintf("Revision %d/%d (revising #%d)", t.Number, t.TotalThoughts, t.RevisesThought)
	case ThoughtBranch:
		prefix = fmt.Sprintf("Branch %d/%d (from #%d, ID: %s)", t.Number, t.TotalThoughts, t.BranchFrom, t.BranchID)
	default:
		prefix = fmt.Sprintf("Thought %d/%d", t.Number, t.TotalThoughts)
	}
	return fmt.Sprintf("%s next=%t more=%t: %s", prefix, t.NextNeeded, t.NeedsMore, t.Content)
}
