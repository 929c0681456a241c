package thumbnail

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// implements Analyzer using Anthropic Claude
type AnthropicAnalyzer struct {
	client  anthropic.Client
	model   anthropic.Model
	options Options
}

func NewAnthropicAnalyzer(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*AnthropicAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	model := anthropic.Model(opts.Model)
	if opts.Model == "" {
		model = anthropic.ModelClaudeHaiku4_5
	}

	return &AnthropicAnalyzer{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (a *AnthropicAnalyzer) Analyze(
	ctx context.Context,
	thumbnailURL string,
) (*Analysis, error) {
	prompt := analysisPrompt(a.options.Language)

	message, err := a.client.Messages.New(
		ctx,
		anthropic.MessageNewParams{
			Model:     a.model,
			MaxTokens: 1200,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(
					anthropic.NewTextBlock(prompt),
					anthropic.NewImageBlock(anthropic.URLImageSourceParam{
						URL: thumbnailURL,
					}),
				),
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("thumbnail analysis failed: %w", err)
	}

	if message == nil || len(message.Content) == 0 {
		return nil, fmt.Errorf("empty response from Anthropic")
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText += block.Text
		}
	}

	if responseText == "" {
		return Fallback(a.options.Language), nil
	}

	analysis, err := extractAnalysis(responseText)
	if err != nil {
		return Fallback(a.options.Language), nil
	}
	return analysis, nil
}

func (a *AnthropicAnalyzer) Close() error {
	return nil
}
