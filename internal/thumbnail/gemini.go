package thumbnail

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// implements Analyzer using Google Gemini
type GeminiAnalyzer struct {
	client  *genai.Client
	model   string
	options Options
}

func NewGeminiAnalyzer(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiAnalyzer{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (a *GeminiAnalyzer) Analyze(
	ctx context.Context,
	thumbnailURL string,
) (*Analysis, error) {
	prompt := analysisPrompt(a.options.Language)

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromURI(thumbnailURL, "image/jpeg"),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("thumbnail analysis failed: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var responseText string
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				responseText += part.Text
			}
		}
		if responseText != "" {
			break
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

func (a *GeminiAnalyzer) Close() error {
	return nil
}
