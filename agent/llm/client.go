// Package llm implements the language-model collaborator on top of the
// OpenAI SDK: one prompt in, one completion out.
package llm

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/jacobsplumbing/frontdesk/agent/contract"
	openrouterx "github.com/jacobsplumbing/frontdesk/pkg/openrouter"
)

type Client struct {
	client      *openaisdk.Client
	model       string
	temperature float64
	maxTokens   int
}

var _ contractx.Generator = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sdkClient, err := openrouterx.NewClient(cfg.OpenRouter())
	if err != nil {
		return nil, fmt.Errorf("%w: create sdk client: %v", contractx.ErrModelInvoke, err)
	}

	return &Client{
		client:      sdkClient,
		model:       strings.TrimSpace(cfg.Model),
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxCompletionToken,
	}, nil
}

// Generate issues a single chat completion. Transport and auth failures are
// wrapped with ErrModelInvoke and keep the SDK error text intact.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
		Temperature: openaisdk.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxCompletionTokens = openaisdk.Int(int64(c.maxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", contractx.ErrModelInvoke)
	}
	return resp.Choices[0].Message.Content, nil
}
