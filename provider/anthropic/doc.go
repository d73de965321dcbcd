// Package anthropic provides a ChatProvider backed by the Anthropic
// Messages API.
//
// Usage:
//
//	client := anthropic.New(apiKey, anthropic.WithModel("claude-sonnet-4-5"))
//	resp, err := client.Chat(ctx, messages)
//
// System messages are lifted into the request's system blocks. Tool
// results are delivered back as user messages carrying tool_result
// blocks, matching the Messages API conventions.
package anthropic
