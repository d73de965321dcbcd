package google

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	ai "github.com/lexdraft/lexdraft"
)

func TestConvertSchema(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {"type": "string", "description": "Search query"},
			"limit": {"type": "integer"}
		},
		"required": ["query"]
	}`)

	schema := convertSchema(raw)
	require.NotNil(t, schema)

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"query"}, schema.Required)
	require.Contains(t, schema.Properties, "query")
	assert.Equal(t, genai.TypeString, schema.Properties["query"].Type)
	assert.Equal(t, "Search query", schema.Properties["query"].Description)
	require.Contains(t, schema.Properties, "limit")
	assert.Equal(t, genai.TypeInteger, schema.Properties["limit"].Type)
}

func TestConvertSchemaEmpty(t *testing.T) {
	assert.Nil(t, convertSchema(nil))
	assert.Nil(t, convertSchema(json.RawMessage(``)))
}

func TestConvertTools(t *testing.T) {
	tools := convertTools([]ai.Tool{
		{Name: "search", Description: "Search the web", Parameters: json.RawMessage(`{"type":"object"}`)},
		{Name: "create_word_doc", Description: "Create a document"},
	})

	require.Len(t, tools, 1)
	require.Len(t, tools[0].FunctionDeclarations, 2)
	assert.Equal(t, "search", tools[0].FunctionDeclarations[0].Name)
	assert.Equal(t, "create_word_doc", tools[0].FunctionDeclarations[1].Name)
}

func TestExtractToolCalls(t *testing.T) {
	parts := []*genai.Part{
		{Text: "Thinking about it."},
		{FunctionCall: &genai.FunctionCall{
			Name: "search",
			Args: map[string]any{"query": "adverse possession"},
		}},
	}

	calls := extractToolCalls(parts)
	require.Len(t, calls, 1)
	assert.Equal(t, "search", calls[0].Name)
	assert.Equal(t, "call_1_search", calls[0].ID)
	assert.JSONEq(t, `{"query":"adverse possession"}`, calls[0].Arguments)
}

func TestFunctionNameFromCallID(t *testing.T) {
	assert.Equal(t, "search", functionNameFromCallID("call_1_search"))
	assert.Equal(t, "create_word_doc", functionNameFromCallID("call_0_create_word_doc"))
	// Unknown shapes pass through
	assert.Equal(t, "tc-abc", functionNameFromCallID("tc-abc"))
	assert.Equal(t, "call_", functionNameFromCallID("call_"))
}
