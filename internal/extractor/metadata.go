package extractor

import (
	"github.com/sorotlabs/sorot/internal/thumbnail"
	"github.com/sorotlabs/sorot/internal/transcript"
)

// VideoMetadata is the complete extraction payload for one video URL.
type VideoMetadata struct {
	URL          string `json:"url"`
	Platform     string `json:"platform"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Duration     *int64 `json:"duration,omitempty"`
	ViewCount    *int64 `json:"view_count,omitempty"`
	LikeCount    *int64 `json:"like_count,omitempty"`
	CommentCount *int64 `json:"comment_count,omitempty"`
	ShareCount   *int64 `json:"share_count,omitempty"`
	UploadDate   string `json:"upload_date,omitempty"`

	ThumbnailURL      string              `json:"thumbnail_url,omitempty"`
	ThumbnailAnalysis *thumbnail.Analysis `json:"thumbnail_analysis,omitempty"`

	Transcript           *transcript.Result `json:"transcript,omitempty"`
	HasTranscript        *bool              `json:"has_transcript,omitempty"`
	TranscriptLanguage   string             `json:"transcript_language,omitempty"`
	TranscriptConfidence *float64           `json:"transcript_confidence,omitempty"`

	ExtractedAt      string `json:"extracted_at,omitempty"`
	ProcessingTimeMs int64  `json:"processing_time_ms,omitempty"`
	CacheHit         bool   `json:"cache_hit"`
}
