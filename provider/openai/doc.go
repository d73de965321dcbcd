// Package openai provides a ChatProvider backed by the OpenAI Chat
// Completions API.
//
// Tool results are sent as tool-role messages keyed by tool call ID,
// one message per result, matching the Chat Completions conventions.
package openai
