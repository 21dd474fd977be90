package llm

import (
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// BuildRequest assembles the completion request. The conversation is seeded
// as if the model had already called get_diff and received the diff, and the
// model is then forced to call commit with arguments matching schema.
func BuildRequest(model, language, diff string, schema *jsonschema.Definition) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SystemPrompt(language),
			},
			{
				Role: openai.ChatMessageRoleAssistant,
				FunctionCall: &openai.FunctionCall{
					Name:      GetDiffFunction,
					Arguments: "{}",
				},
			},
			{
				Role:    openai.ChatMessageRoleFunction,
				Name:    GetDiffFunction,
				Content: diff,
			},
		},
		Functions: []openai.FunctionDefinition{
			{
				Name:        GetDiffFunction,
				Description: PromptGetDiffDescription,
				Parameters: &jsonschema.Definition{
					Type:       jsonschema.Object,
					Properties: map[string]jsonschema.Definition{},
				},
			},
			{
				Name:        CommitFunction,
				Description: PromptCommitDescription,
				Parameters:  schema,
			},
		},
		FunctionCall: openai.FunctionCall{
			Name: CommitFunction,
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		Stream:      false,
	}
}
