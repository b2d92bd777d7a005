package catalog

import openai "github.com/sashabaranov/go-openai"

// OpenAITools converts a compiled catalog into the OpenAI function-calling
// wire shape: {type: "function", function: {name, description, parameters,
// strict: true}}. Each tool is strict — the schema already closes the world
// with additionalProperties: false.
func OpenAITools(tools []Tool) []openai.Tool {
	out := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Strict:      true,
				Parameters:  t.Schema,
			},
		})
	}
	return out
}
