package thumbnail

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements Analyzer using OpenAI vision models
type OpenAIAnalyzer struct {
	client  openai.Client
	model   string
	options Options
}

func NewOpenAIAnalyzer(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAIAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = "gpt-4o"
	}

	return &OpenAIAnalyzer{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (a *OpenAIAnalyzer) Analyze(
	ctx context.Context,
	thumbnailURL string,
) (*Analysis, error) {
	prompt := analysisPrompt(a.options.Language)

	completion, err := a.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(
					[]openai.ChatCompletionContentPartUnionParam{
						openai.TextContentPart(prompt),
						openai.ImageContentPart(
							openai.ChatCompletionContentPartImageImageURLParam{
								URL:    thumbnailURL,
								Detail: "high",
							},
						),
					},
				),
			},
			Model:       a.model,
			MaxTokens:   openai.Int(1200),
			Temperature: openai.Float(0.1),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("thumbnail analysis failed: %w", err)
	}

	if completion == nil || len(completion.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	responseText := completion.Choices[0].Message.Content
	if responseText == "" {
		return Fallback(a.options.Language), nil
	}

	analysis, err := extractAnalysis(responseText)
	if err != nil {
		return Fallback(a.options.Language), nil
	}
	return analysis, nil
}

func (a *OpenAIAnalyzer) Close() error {
	return nil
}
