package google

import (
	"encoding/json"
	"fmt"
	"strings"

	ai "github.com/lexdraft/lexdraft"
	"google.golang.org/genai"
)

func convertTools(tools []ai.Tool) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}

	funcs := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		funcs[i] = &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  convertSchema(t.Parameters),
		}
	}

	return []*genai.Tool{{FunctionDeclarations: funcs}}
}

func convertToolChoice(choice ai.ToolChoice) *genai.ToolConfig {
	switch choice {
	case ai.ToolChoiceNone:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeNone,
			},
		}
	case ai.ToolChoiceRequired:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAny,
			},
		}
	default:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAuto,
			},
		}
	}
}

// convertSchema maps a JSON Schema document to a genai Schema.
func convertSchema(raw json.RawMessage) *genai.Schema {
	if len(raw) == 0 {
		return nil
	}
	var node struct {
		Type        string                     `json:"type"`
		Description string                     `json:"description"`
		Properties  map[string]json.RawMessage `json:"properties"`
		Required    []string                   `json:"required"`
		Items       json.RawMessage            `json:"items"`
	}
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil
	}

	schema := &genai.Schema{
		Description: node.Description,
		Required:    node.Required,
	}
	switch node.Type {
	case "object":
		schema.Type = genai.TypeObject
	case "array":
		schema.Type = genai.TypeArray
	case "string":
		schema.Type = genai.TypeString
	case "number":
		schema.Type = genai.TypeNumber
	case "integer":
		schema.Type = genai.TypeInteger
	case "boolean":
		schema.Type = genai.TypeBoolean
	}
	if len(node.Properties) > 0 {
		schema.Properties = make(map[string]*genai.Schema, len(node.Properties))
		for name, prop := range node.Properties {
			schema.Properties[name] = convertSchema(prop)
		}
	}
	if len(node.Items) > 0 {
		schema.Items = convertSchema(node.Items)
	}
	return schema
}

// extractToolCalls synthesizes call IDs carrying the function name, since
// the GenAI API has no tool call IDs of its own.
func extractToolCalls(parts []*genai.Part) []ai.ToolCall {
	var calls []ai.ToolCall
	for i, part := range parts {
		if part.FunctionCall != nil {
			args, _ := json.Marshal(part.FunctionCall.Args)
			calls = append(calls, ai.ToolCall{
				ID:        fmt.Sprintf("call_%d_%s", i, part.FunctionCall.Name),
				Name:      part.FunctionCall.Name,
				Arguments: string(args),
			})
		}
	}
	return calls
}

// functionNameFromCallID recovers the function name embedded in a
// synthesized call ID. Unknown shapes pass through unchanged.
func functionNameFromCallID(id string) string {
	if strings.HasPrefix(id, "call_") {
		rest := strings.TrimPrefix(id, "call_")
		if _, name, ok := strings.Cut(rest, "_"); ok && name != "" {
			return name
		}
	}
	return id
}
