package completion

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Model is the fixed model identifier sent with every request.
const Model = openai.GPT4

// OpenAI is a Client backed by an OpenAI-compatible chat-completion API.
type OpenAI struct {
	client *openai.Client
}

// NewOpenAI creates an OpenAI client from the given config. An empty BaseURL
// keeps the library default endpoint.
func NewOpenAI(cfg *Config) *OpenAI {
	occfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		occfg.BaseURL = cfg.BaseURL
	}
	return &OpenAI{client: openai.NewClientWithConfig(occfg)}
}

// Complete sends messages with the fixed model and provider-default sampling
// parameters and returns the first choice's content.
func (c *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    Model,
		Messages: toOpenAI(messages),
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// toOpenAI skips system messages with empty content. go-openai omits an
// empty content field, and providers reject a system message without one.
func toOpenAI(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem && m.Content == "" {
			continue
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}
