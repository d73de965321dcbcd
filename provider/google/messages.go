package google

import (
	"encoding/json"

	ai "github.com/lexdraft/lexdraft"
	"google.golang.org/genai"
)

// convertMessages maps messages to genai Contents. System messages are
// lifted into the request config as system instruction parts.
func convertMessages(messages []ai.Message) ([]*genai.Content, *genai.GenerateContentConfig) {
	var contents []*genai.Content
	config := &genai.GenerateContentConfig{}

	for _, msg := range messages {
		if msg.Role == ai.RoleSystem {
			if msg.Content != "" {
				if config.SystemInstruction == nil {
					config.SystemInstruction = &genai.Content{}
				}
				config.SystemInstruction.Parts = append(config.SystemInstruction.Parts,
					&genai.Part{Text: msg.Content})
			}
			continue
		}

		role := "user"
		if msg.Role == ai.RoleAssistant {
			role = "model"
		}

		var parts []*genai.Part
		if msg.Content != "" {
			parts = append(parts, &genai.Part{Text: msg.Content})
		}

		for _, tc := range msg.ToolCalls {
			var args map[string]any
			json.Unmarshal([]byte(tc.Arguments), &args)
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					Name: tc.Name,
					Args: args,
				},
			})
		}

		for _, tr := range msg.ToolResults {
			// Structured content passes through, plain text is wrapped
			var result map[string]any
			if err := json.Unmarshal([]byte(tr.Content), &result); err != nil {
				result = map[string]any{"result": tr.Content}
			}
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     functionNameFromCallID(tr.ToolCallID),
					Response: result,
				},
			})
		}

		if len(parts) > 0 {
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: parts,
			})
		}
	}

	return contents, config
}
