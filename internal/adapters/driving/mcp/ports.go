package mcp

import (
	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Thinking processes sequential thoughts.
	Thinking driving.ThinkingService

	// Settings provides team configuration, used for diagnostics.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Thinking == nil {
		return ErrMissingThinkingService
	}
	// Settings is optional
	return nil
}
