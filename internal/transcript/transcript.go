package transcript

// Segment is one timed span of subtitle text. Immutable once produced by
// a parser.
type Segment struct {
	StartTime  float64  `json:"start_time"`
	EndTime    float64  `json:"end_time"`
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Transcript is the assembled transcript for one video.
type Transcript struct {
	FullText         string    `json:"full_text"`
	Language         string    `json:"language"`
	ConfidenceScore  float64   `json:"confidence_score"`
	Segments         []Segment `json:"segments"`
	GeneratedMethod  string    `json:"generated_method"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	WordCount        int       `json:"word_count"`
	DurationSeconds  *float64  `json:"duration_seconds,omitempty"`
}

// Track describes one discoverable subtitle track without its content.
type Track struct {
	FormatID    string `json:"format_id"`
	Language    string `json:"language"`
	IsAutomatic bool   `json:"is_automatic"`
	URL         string `json:"url,omitempty"`
	FileSize    *int64 `json:"file_size,omitempty"`
}

// Inventory catalogs the caption tracks discovered for a video. Built once
// per extraction call and read-only afterward.
type Inventory struct {
	ManualSubtitles   []Track `json:"manual_subtitles"`
	AutomaticCaptions []Track `json:"automatic_captions"`
	PreferredLanguage string  `json:"preferred_language,omitempty"`
	TotalLanguages    int     `json:"total_languages"`
}

// Quality is a heuristic assessment of an extracted transcript.
type Quality struct {
	HasTimingInfo     bool    `json:"has_timing_info"`
	HasPunctuation    bool    `json:"has_punctuation"`
	CompletenessScore float64 `json:"completeness_score"`
	ReadabilityScore  float64 `json:"readability_score"`
}

// Result is the sole return value of Service.Extract. Transcript is present
// iff Success; ErrorMessage is present iff extraction failed.
type Result struct {
	Success            bool        `json:"success"`
	Transcript         *Transcript `json:"transcript,omitempty"`
	AvailableSubtitles *Inventory  `json:"available_subtitles,omitempty"`
	ErrorMessage       string      `json:"error_message,omitempty"`
	FallbackUsed       bool        `json:"fallback_used"`
	QualityAssessment  *Quality    `json:"quality_assessment,omitempty"`
}
