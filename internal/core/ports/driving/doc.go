// Package driving provides interfaces for primary/inbound ports: the
// services that external actors (MCP tools, CLI commands) invoke.
package driving
