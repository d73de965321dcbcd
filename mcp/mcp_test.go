package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/lexdraft/lexdraft"
	"github.com/lexdraft/lexdraft/tool"
)

func TestToMCPTool(t *testing.T) {
	t.Run("carries schema through as raw input schema", func(t *testing.T) {
		schema := json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"}}}`)
		def := ai.Tool{
			Name:        "search",
			Description: "Search for legal sources",
			Parameters:  schema,
		}

		mcpTool := ToMCPTool(def)

		assert.Equal(t, "search", mcpTool.Name)
		assert.Equal(t, "Search for legal sources", mcpTool.Description)
		assert.Equal(t, schema, mcpTool.RawInputSchema)
	})

	t.Run("handles nil parameters", func(t *testing.T) {
		mcpTool := ToMCPTool(ai.Tool{Name: "simple", Description: "Simple tool"})
		assert.Equal(t, "simple", mcpTool.Name)
	})
}

func TestFromMCPTool(t *testing.T) {
	t.Run("prefers raw schema", func(t *testing.T) {
		schema := json.RawMessage(`{"type":"object"}`)
		def := FromMCPTool(mcp.NewToolWithRawSchema("caselaw", "Case law lookup", schema))

		assert.Equal(t, "caselaw", def.Name)
		assert.JSONEq(t, `{"type":"object"}`, string(def.Parameters))
	})

	t.Run("marshals structured schema", func(t *testing.T) {
		mcpTool := mcp.NewTool("search",
			mcp.WithDescription("Search the web"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
		)

		def := FromMCPTool(mcpTool)

		require.NotEmpty(t, def.Parameters)
		var parsed map[string]any
		require.NoError(t, json.Unmarshal(def.Parameters, &parsed))
		assert.Equal(t, "object", parsed["type"])
	})
}

func TestToMCPCallToolRequest(t *testing.T) {
	t.Run("parses JSON arguments", func(t *testing.T) {
		req := ToMCPCallToolRequest(ai.ToolCall{
			ID:        "tc-1",
			Name:      "search",
			Arguments: `{"query":"statute of frauds"}`,
		})

		assert.Equal(t, "search", req.Params.Name)
		args, ok := req.Params.Arguments.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "statute of frauds", args["query"])
	})

	t.Run("passes non-JSON arguments through", func(t *testing.T) {
		req := ToMCPCallToolRequest(ai.ToolCall{Name: "echo", Arguments: "plain text"})
		assert.Equal(t, "plain text", req.Params.Arguments)
	})
}

func TestFromMCPCallToolResult(t *testing.T) {
	t.Run("concatenates text content", func(t *testing.T) {
		result := FromMCPCallToolResult("tc-1", &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{Type: "text", Text: "first"},
				mcp.TextContent{Type: "text", Text: "second"},
			},
		})

		assert.Equal(t, "tc-1", result.ToolCallID)
		assert.Equal(t, "first\nsecond", result.Content)
		assert.False(t, result.IsError)
	})

	t.Run("nil result is an error", func(t *testing.T) {
		result := FromMCPCallToolResult("tc-2", nil)
		assert.True(t, result.IsError)
	})

	t.Run("propagates error flag", func(t *testing.T) {
		result := FromMCPCallToolResult("tc-3", &mcp.CallToolResult{
			Content: []mcp.Content{mcp.TextContent{Type: "text", Text: "boom"}},
			IsError: true,
		})
		assert.True(t, result.IsError)
		assert.Equal(t, "boom", result.Content)
	})
}

func TestToMCPCallToolResult(t *testing.T) {
	ok := ToMCPCallToolResult(ai.ToolResult{Content: "fine"})
	assert.False(t, ok.IsError)

	bad := ToMCPCallToolResult(ai.ToolResult{Content: "broken", IsError: true})
	assert.True(t, bad.IsError)
}

func TestNewServerRegistersTools(t *testing.T) {
	registry := tool.NewRegistry()
	type lookupArgs struct {
		Term string `json:"term" desc:"term to look up" required:"true"`
	}
	tool.MustRegisterFunc(registry, "lookup", "Look things up.", func(_ context.Context, args lookupArgs) (string, error) {
		return "definition of " + args.Term, nil
	})

	s := NewServer(registry, WithName("test-server"), WithVersion("0.1.0"))
	require.NotNil(t, s)
}
