// Package lexdraft provides the core types for a legal-drafting agent:
// conversation messages, tool definitions, the chat provider contract, and
// error categorization.
//
// The root package is intentionally small. The interesting pieces live in
// subpackages:
//
//   - agent: the orchestrator state machine with human-in-the-loop review
//   - tool: the tool registry and the built-in search/document tools
//   - provider: ChatProvider implementations (Anthropic, OpenAI, Google)
//   - config: environment-based run configuration
//   - mcp: tool registries backed by MCP servers
//
// # Model Gateway Contract
//
// A [ChatProvider] receives a rendered system prompt plus the conversation
// transcript and returns exactly one assistant turn, optionally carrying
// tool-call proposals. Retries and backoff are the provider's concern; wrap
// any provider with [WithRetry] to get them.
//
// # Errors
//
// Provider errors are categorized as transient, permanent, or user input
// via [CategorizedError] so callers (and the retry wrapper) can decide how
// to react.
package lexdraft
