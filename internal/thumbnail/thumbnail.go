package thumbnail

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// structured description of a video thumbnail
type Analysis struct {
	VisualStyle      string   `json:"visual_style,omitempty"`
	Setting          string   `json:"setting,omitempty"`
	PeopleCount      *int     `json:"people_count,omitempty"`
	CameraAngle      string   `json:"camera_angle,omitempty"`
	TextOverlayStyle string   `json:"text_overlay_style,omitempty"`
	ColorScheme      string   `json:"color_scheme,omitempty"`
	HookElements     []string `json:"hook_elements,omitempty"`
	ConfidenceScore  *float64 `json:"confidence_score,omitempty"`

	CompositionType string   `json:"composition_type,omitempty"`
	FocalPoint      string   `json:"focal_point,omitempty"`
	LightingQuality string   `json:"lighting_quality,omitempty"`
	MoodEmotion     string   `json:"mood_emotion,omitempty"`
	BrandElements   []string `json:"brand_elements,omitempty"`

	StoryStage          string `json:"story_stage,omitempty"`
	CallToActionVisible *bool  `json:"call_to_action_visible,omitempty"`
	ProductProminence   string `json:"product_prominence,omitempty"`

	ProductionQuality    string   `json:"production_quality,omitempty"`
	BackgroundComplexity string   `json:"background_complexity,omitempty"`
	PropsObjects         []string `json:"props_objects,omitempty"`

	VisualInterestLevel string `json:"visual_interest_level,omitempty"`
	ScrollStoppingPower string `json:"scroll_stopping_power,omitempty"`
	TargetDemographic   string `json:"target_demographic,omitempty"`

	ContentCategory string `json:"content_category,omitempty"`
	PacingIndicator string `json:"pacing_indicator,omitempty"`
	TransitionStyle string `json:"transition_style,omitempty"`
}

// interface for vision-based thumbnail analysis
type Analyzer interface {
	Analyze(ctx context.Context, thumbnailURL string) (*Analysis, error)
}

// analysis service provider
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

type Options struct {
	Model    string
	Language string // "id" or "en", defaults to "id"
}

// creates Analyzer based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Analyzer, error) {
	opts.Language = normalizeLanguage(opts.Language)

	switch provider {
	case ProviderOpenAI:
		return NewOpenAIAnalyzer(ctx, apiKey, opts)
	case ProviderGemini:
		return NewGeminiAnalyzer(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicAnalyzer(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported analysis provider: %s", provider)
	}
}

func normalizeLanguage(language string) string {
	if language == "id" || language == "en" {
		return language
	}
	return "id"
}

func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	jsonBlockRegex := regexp.MustCompile("```(?:json)?\\s*")
	s = jsonBlockRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")

	return strings.TrimSpace(s)
}

// extractAnalysis pulls the analysis object out of a model response. Fenced
// code blocks and surrounding prose are tolerated, and a response that nests
// fields under section objects is flattened one level.
func extractAnalysis(text string) (*Analysis, error) {
	text = cleanJSONResponse(text)

	if !strings.HasPrefix(text, "{") {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start == -1 || end == -1 || end <= start {
			return nil, fmt.Errorf("no JSON object found in response")
		}
		text = text[start : end+1]
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	flattened := map[string]json.RawMessage{}
	for key, value := range raw {
		var section map[string]json.RawMessage
		if err := json.Unmarshal(value, &section); err == nil {
			for sectionKey, sectionValue := range section {
				flattened[sectionKey] = sectionValue
			}
			continue
		}
		flattened[key] = value
	}

	merged, err := json.Marshal(flattened)
	if err != nil {
		return nil, err
	}

	var analysis Analysis
	if err := json.Unmarshal(merged, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis fields: %w", err)
	}
	return &analysis, nil
}

// Fallback returns a conservative default analysis for responses that could
// not be parsed. Field values match the requested analysis language.
func Fallback(language string) *Analysis {
	unknown := "unknown"
	demographic := "young_adults"
	if normalizeLanguage(language) == "id" {
		unknown = "tidak_diketahui"
		demographic = "dewasa_muda"
	}

	people := 0
	confidence := 0.5
	ctaVisible := false

	return &Analysis{
		VisualStyle:          unknown,
		Setting:              unknown,
		PeopleCount:          &people,
		CameraAngle:          "medium_shot",
		ColorScheme:          "neutral",
		ConfidenceScore:      &confidence,
		CompositionType:      "center_focused",
		LightingQuality:      "natural",
		MoodEmotion:          "neutral",
		StoryStage:           "opening_hook",
		CallToActionVisible:  &ctaVisible,
		ProductProminence:    "none",
		ProductionQuality:    "amateur",
		BackgroundComplexity: "moderate",
		VisualInterestLevel:  "medium",
		ScrollStoppingPower:  "moderate",
		TargetDemographic:    demographic,
		ContentCategory:      unknown,
		PacingIndicator:      "moderate",
		TransitionStyle:      "static",
	}
}
