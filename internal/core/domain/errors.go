package domain

import (
	"errors"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidThought indicates a candidate thought violated one or more
	// construction rules. The concrete violations are carried by
	// ValidationError, which unwraps to this sentinel.
	ErrInvalidThought = errors.New("invalid thought")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTeamUnavailable indicates the thinking team collaborator is not
	// configured or could not be reached.
	ErrTeamUnavailable = errors.New("team service unavailable")
)

// ViolationDelimiter joins individual violation messages into a single
// error string. Callers may split on it to recover the list.
const ViolationDelimiter = "; "

// ValidationError aggregates every construction rule violated by a
// candidate thought. All rules are evaluated independently so the caller
// sees the complete list in one round trip.
type ValidationError struct {
	// Violations holds one message per violated rule, in rule order.
	Violations []string
}

// Error returns the violations joined with ViolationDelimiter.
func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ViolationDelimiter)
}

// Unwrap allows errors.Is(err, ErrInvalidThought).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidThought
}
