// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): LLM providers, the thinking team
// collaborator, configuration, and prompt templates.
package driven
