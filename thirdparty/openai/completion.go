package openai

import (
	"context"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

var (
	// ErrNoCompletion means the service answered but produced no usable text.
	ErrNoCompletion = errors.New("completion returned no content")
	// ErrUpstream wraps every transport, status or decoding failure.
	ErrUpstream = errors.New("completion service failure")
)

type CompletionClient interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

type Client struct {
	api *goopenai.Client
}

// NewClient builds a chat-completion client. An empty baseURL keeps the
// library default endpoint.
func NewClient(apiKey, baseURL string) *Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{api: goopenai.NewClientWithConfig(cfg)}
}

// Complete sends prompt as a single user message and returns the first
// choice's text. It makes exactly one call.
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrNoCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
