// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Cogitate. It exposes the sequential thinking tool to AI assistants.
package mcp

import "errors"

// ErrMissingThinkingService is returned when the thinking service is not provided.
var ErrMissingThinkingService = errors.New("mcp: thinking service is required")
