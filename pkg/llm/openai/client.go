package openai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps the OpenAI chat completions API behind the ChatModel port.
type Client struct {
	api   *openai.Client
	model string
}

func New(apiKey, model string) *Client {
	if model == "" {
		model = openai.GPT4oMini
	}
	var api *openai.Client
	if apiKey != "" {
		api = openai.NewClient(apiKey)
	}
	return &Client{api: api, model: model}
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.api == nil {
		return "", errors.New("openai api key is empty")
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned by model")
	}
	return resp.Choices[0].Message.Content, nil
}
