package driven

import "context"

// TeamRunner is the external collaborator boundary: it receives a prepared
// prompt describing one thought and returns the team's synthesized
// response. The core treats both strings as opaque.
//
// The ledger is updated before Run is called, so a failed run leaves the
// thought recorded; history reflects what was asked, not what succeeded.
type TeamRunner interface {
	// Run processes one prompt through the coordinator team.
	Run(ctx context.Context, prompt string) (string, error)

	// Describe returns a short human-readable description of the team
	// composition, for logging and diagnostics.
	Describe() string

	// Close releases resources held by the team.
	Close() error
}
