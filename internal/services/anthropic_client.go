package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/config"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// AnthropicClient generates text through the Anthropic Messages API.
type AnthropicClient struct {
	apiKey string
	model  string
	client anthropic.Client
}

func NewAnthropicClient(cfg *config.Config) *AnthropicClient {
	baseURL := strings.TrimRight(cfg.AnthropicBaseURL, "/") + "/"
	return &AnthropicClient{
		apiKey: cfg.AnthropicAPIKey,
		model:  cfg.AnthropicModel,
		client: anthropic.NewClient(
			option.WithAPIKey(cfg.AnthropicAPIKey),
			option.WithBaseURL(baseURL),
			option.WithHeader("anthropic-version", cfg.AnthropicVersion),
			option.WithHTTPClient(&http.Client{
				Timeout:   cfg.AITimeout,
				Transport: otelhttp.NewTransport(http.DefaultTransport),
			}),
			// one attempt per summary request
			option.WithMaxRetries(0),
		),
	}
}

// IsAvailable checks if the API key is configured.
func (a *AnthropicClient) IsAvailable() bool {
	return a.apiKey != ""
}

func (a *AnthropicClient) Generate(ctx context.Context, prompt string, maxTokens int) ([]ContentBlock, error) {
	if a.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	blocks := make([]ContentBlock, 0, len(msg.Content))
	for _, b := range msg.Content {
		blocks = append(blocks, ContentBlock{Type: b.Type, Text: b.Text})
	}
	return blocks, nil
}
