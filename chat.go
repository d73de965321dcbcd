package lexdraft

import "context"

// ChatProvider defines the interface for AI chat providers.
//
// A provider receives the full conversation (system prompt included as the
// first message) and returns a single assistant turn. Any retry or backoff
// behavior is internal to the provider; see [WithRetry].
type ChatProvider interface {
	// Chat sends a conversation and returns a complete response.
	Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error)
}
