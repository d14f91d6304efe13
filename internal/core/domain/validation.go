package domain

import "fmt"

// Violation messages reference the public tool field names (camelCase) so
// the calling model can correct its arguments directly.
const (
	msgRevisionFlag  = "revisesThought requires isRevision=true"
	msgRevisionOrder = "revisesThought must be a positive number less than thoughtNumber"
	msgBranchOrigin  = "branchId requires branchFromThought to be set"
	msgBranchOrder   = "branchFromThought must be a positive number less than thoughtNumber"
	msgContentEmpty  = "thought content must not be empty"
)

// A validationRule inspects a candidate field set and returns a single
// violation message, or "" when the rule holds. Rules are pure functions
// and must not depend on each other.
type validationRule func(f ThoughtFields) string

// thoughtRules is the ordered rule list applied before construction.
// Every rule runs; violations are collected rather than short-circuited,
// so a caller fixing one mistake sees the others in the same response.
var thoughtRules = []validationRule{
	checkThoughtNumber,
	checkRevisionFlag,
	checkRevisionOrder,
	checkBranchOrigin,
	checkBranchOrder,
	checkTotalThoughts,
	checkContent,
}

// Validate evaluates every construction rule against the candidate
// fields and returns all violation messages. An empty result means the
// fields are admissible.
func Validate(f ThoughtFields) []string {
	var violations []string
	for _, rule := range thoughtRules {
		if msg := rule(f); msg != "" {
			violations = append(violations, msg)
		}
	}
	return violations
}

func checkThoughtNumber(f ThoughtFields) string {
	if f.Number < 1 {
		return "thoughtNumber must be at least 1"
	}
	return ""
}

func checkRevisionFlag(f ThoughtFields) string {
	if f.RevisesThought != 0 && !f.IsRevision {
		return msgRevisionFlag
	}
	return ""
}

func checkRevisionOrder(f ThoughtFields) string {
	if f.RevisesThought != 0 && (f.RevisesThought < 1 || f.RevisesThought >= f.Number) {
		return msgRevisionOrder
	}
	return ""
}

func checkBranchOrigin(f ThoughtFields) string {
	if f.BranchID != "" && f.BranchFrom == 0 {
		return msgBranchOrigin
	}
	return ""
}

func checkBranchOrder(f ThoughtFields) string {
	if f.BranchFrom != 0 && (f.BranchFrom < 1 || f.BranchFrom >= f.Number) {
		return msgBranchOrder
	}
	return ""
}

func checkTotalThoughts(f ThoughtFields) string {
	if f.TotalThoughts < MinTotalThoughts {
		return fmt.Sprintf("totalThoughts must be at least %d", MinTotalThoughts)
	}
	return ""
}

func checkContent(f ThoughtFields) string {
	if f.Content == "" {
		return msgContentEmpty
	}
	return ""
}
