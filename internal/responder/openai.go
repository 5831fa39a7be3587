package responder

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.ChatModelGPT3_5Turbo

const (
	maxCompletionTokens = 500
	temperature         = 0.7
)

// OpenAIClient calls the OpenAI chat-completions API.
type OpenAIClient struct {
	client openai.Client
	model  openai.ChatModel
}

// NewOpenAIClient builds a completion client for the given credential
// and model. An empty model selects DefaultModel.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	m := openai.ChatModel(model)
	if model == "" {
		m = DefaultModel
	}
	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  m,
	}
}

// Complete implements CompletionClient.
func (c *OpenAIClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       c.model,
		MaxTokens:   openai.Int(maxCompletionTokens),
		Temperature: openai.Float(temperature),
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
