// Package google provides a ChatProvider backed by the Google GenAI API.
//
// System messages become the request's system instruction. Because the
// GenAI API has no native tool call IDs, IDs are synthesized with the
// function name embedded so results can be routed back correctly.
package google
