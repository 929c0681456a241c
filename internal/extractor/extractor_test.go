package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sorotlabs/sorot/internal/cache"
	"github.com/sorotlabs/sorot/internal/logging"
	"github.com/sorotlabs/sorot/internal/mediainfo"
	"github.com/sorotlabs/sorot/internal/thumbnail"
	"github.com/sorotlabs/sorot/internal/transcript"
)

const testVideoURL = "https://www.tiktok.com/@creator/video/7234567890123456789"

type fakeSource struct {
	info  mediainfo.Info
	err   error
	calls int
}

func (f *fakeSource) Extract(_ context.Context, _ string) (mediainfo.Info, error) {
	f.calls++
	return f.info, f.err
}

type fakeAnalyzer struct {
	analysis *thumbnail.Analysis
	err      error
	calls    int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ string) (*thumbnail.Analysis, error) {
	f.calls++
	return f.analysis, f.err
}

type fakeTranscripts struct {
	result *transcript.Result
	calls  int
}

func (f *fakeTranscripts) Extract(_ context.Context, _ mediainfo.Info, _, _ string) *transcript.Result {
	f.calls++
	return f.result
}

func videoInfo() mediainfo.Info {
	return mediainfo.Info{
		"title":         "Cooking hack",
		"description":   "Quick recipe",
		"duration":      42.0,
		"view_count":    1500.0,
		"like_count":    200.0,
		"comment_count": 10.0,
		"repost_count":  5.0,
		"upload_date":   "20260815",
		"thumbnail":     "https://cdn.example.com/thumb.jpg",
		"vcodec":        "h264",
	}
}

func newTestService(src MetadataSource, tr TranscriptExtractor, an thumbnail.Analyzer, cfg Config) *Service {
	store := cache.New("", logging.NewNopLogger())
	return NewService(cfg, src, tr, an, store, logging.NewNopLogger())
}

func TestExtractBasicMetadata(t *testing.T) {
	src := &fakeSource{info: videoInfo()}
	svc := newTestService(src, nil, nil, Config{})

	metadata, err := svc.Extract(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metadata.Platform != "tiktok" {
		t.Errorf("platform: got %q", metadata.Platform)
	}
	if metadata.Title != "Cooking hack" {
		t.Errorf("title: got %q", metadata.Title)
	}
	if metadata.Duration == nil || *metadata.Duration != 42 {
		t.Errorf("duration: got %v", metadata.Duration)
	}
	if metadata.ShareCount == nil || *metadata.ShareCount != 5 {
		t.Errorf("share count: got %v", metadata.ShareCount)
	}
	if metadata.CacheHit {
		t.Error("fresh extraction must not be a cache hit")
	}
	if metadata.ExtractedAt == "" {
		t.Error("expected extracted_at timestamp")
	}
}

func TestExtractUnsupportedPlatform(t *testing.T) {
	svc := newTestService(&fakeSource{}, nil, nil, Config{})

	_, err := svc.Extract(context.Background(), "https://www.youtube.com/watch?v=abc", Options{})
	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if extractErr.Code != CodeUnsupportedPlatform {
		t.Errorf("code: got %q", extractErr.Code)
	}
}

func TestExtractVideoUnavailable(t *testing.T) {
	src := &fakeSource{err: errors.New("ERROR: This video is private")}
	svc := newTestService(src, nil, nil, Config{})

	_, err := svc.Extract(context.Background(), testVideoURL, Options{})
	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if extractErr.Code != CodeVideoUnavailable {
		t.Errorf("code: got %q, want %q", extractErr.Code, CodeVideoUnavailable)
	}
}

func TestExtractGenericFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("network glitch")}
	svc := newTestService(src, nil, nil, Config{})

	_, err := svc.Extract(context.Background(), testVideoURL, Options{})
	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if extractErr.Code != CodeExtractionFailed {
		t.Errorf("code: got %q", extractErr.Code)
	}
}

func TestExtractNotVideoContent(t *testing.T) {
	src := &fakeSource{info: mediainfo.Info{"width": 800.0, "height": 600.0}}
	svc := newTestService(src, nil, nil, Config{})

	_, err := svc.Extract(context.Background(), testVideoURL, Options{})
	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if extractErr.Code != CodeNotVideoContent {
		t.Errorf("code: got %q", extractErr.Code)
	}
	if extractErr.Details["content_type"] != "image" {
		t.Errorf("content type: got %v", extractErr.Details["content_type"])
	}
}

func TestExtractWithThumbnailAnalysis(t *testing.T) {
	analyzer := &fakeAnalyzer{analysis: &thumbnail.Analysis{VisualStyle: "tutorial"}}
	svc := newTestService(&fakeSource{info: videoInfo()}, nil, analyzer, Config{EnableThumbnails: true})

	metadata, err := svc.Extract(context.Background(), testVideoURL, Options{IncludeThumbnailAnalysis: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analyzer.calls != 1 {
		t.Errorf("analyzer calls: got %d", analyzer.calls)
	}
	if metadata.ThumbnailAnalysis == nil || metadata.ThumbnailAnalysis.VisualStyle != "tutorial" {
		t.Errorf("analysis: got %+v", metadata.ThumbnailAnalysis)
	}
}

func TestExtractThumbnailFailureIsSoft(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("vision API down")}
	svc := newTestService(&fakeSource{info: videoInfo()}, nil, analyzer, Config{EnableThumbnails: true})

	metadata, err := svc.Extract(context.Background(), testVideoURL, Options{IncludeThumbnailAnalysis: true})
	if err != nil {
		t.Fatalf("analysis failure must not fail extraction: %v", err)
	}
	if metadata.ThumbnailAnalysis != nil {
		t.Error("expected no analysis")
	}
}

func TestExtractThumbnailSkippedWhenNotRequested(t *testing.T) {
	analyzer := &fakeAnalyzer{analysis: &thumbnail.Analysis{}}
	svc := newTestService(&fakeSource{info: videoInfo()}, nil, analyzer, Config{EnableThumbnails: true})

	if _, err := svc.Extract(context.Background(), testVideoURL, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analyzer.calls != 0 {
		t.Errorf("analyzer must not be called, got %d calls", analyzer.calls)
	}
}

func TestExtractWithTranscript(t *testing.T) {
	duration := 4.0
	transcripts := &fakeTranscripts{result: &transcript.Result{
		Success: true,
		Transcript: &transcript.Transcript{
			FullText:        "Hello world",
			Language:        "en",
			ConfidenceScore: 0.9,
			WordCount:       2,
			DurationSeconds: &duration,
			GeneratedMethod: "manual_vtt",
		},
	}}
	svc := newTestService(&fakeSource{info: videoInfo()}, transcripts, nil, Config{})

	metadata, err := svc.Extract(context.Background(), testVideoURL, Options{IncludeTranscript: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metadata.HasTranscript == nil || !*metadata.HasTranscript {
		t.Error("expected has_transcript true")
	}
	if metadata.TranscriptLanguage != "en" {
		t.Errorf("language: got %q", metadata.TranscriptLanguage)
	}
	if metadata.TranscriptConfidence == nil || *metadata.TranscriptConfidence != 0.9 {
		t.Errorf("confidence: got %v", metadata.TranscriptConfidence)
	}
	if !strings.HasSuffix(metadata.Description, "\n\nTranscript: Hello world") {
		t.Errorf("description not enriched: %q", metadata.Description)
	}
}

func TestExtractTranscriptFailureIsSoft(t *testing.T) {
	transcripts := &fakeTranscripts{result: &transcript.Result{
		Success:      false,
		ErrorMessage: "No subtitles or captions available for this video",
	}}
	svc := newTestService(&fakeSource{info: videoInfo()}, transcripts, nil, Config{})

	metadata, err := svc.Extract(context.Background(), testVideoURL, Options{IncludeTranscript: true})
	if err != nil {
		t.Fatalf("transcript failure must not fail extraction: %v", err)
	}
	if metadata.HasTranscript == nil || *metadata.HasTranscript {
		t.Error("expected has_transcript false")
	}
	if metadata.Description != "Quick recipe" {
		t.Errorf("description must stay unchanged, got %q", metadata.Description)
	}
}

func TestExtractCacheRoundTrip(t *testing.T) {
	src := &fakeSource{info: videoInfo()}
	svc := newTestService(src, nil, nil, Config{CacheEnabled: true, CacheTTL: time.Minute})

	first, err := svc.Extract(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.CacheHit {
		t.Error("first extraction must miss")
	}

	second, err := svc.Extract(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.CacheHit {
		t.Error("second extraction must hit the cache")
	}
	if src.calls != 1 {
		t.Errorf("source must only run once, got %d calls", src.calls)
	}
	if second.Title != first.Title {
		t.Errorf("cached payload mismatch: %q vs %q", second.Title, first.Title)
	}
}

func TestExtractCacheKeyedByOptions(t *testing.T) {
	src := &fakeSource{info: videoInfo()}
	svc := newTestService(src, &fakeTranscripts{result: &transcript.Result{Success: false}}, nil,
		Config{CacheEnabled: true, CacheTTL: time.Minute})

	if _, err := svc.Extract(context.Background(), testVideoURL, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Extract(context.Background(), testVideoURL, Options{IncludeTranscript: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls != 2 {
		t.Errorf("different options must bypass each other's cache entries, got %d calls", src.calls)
	}
}

func TestCacheStats(t *testing.T) {
	svc := newTestService(&fakeSource{info: videoInfo()}, nil, nil, Config{})
	stats := svc.CacheStats(context.Background())
	if stats.Backend != "memory" {
		t.Errorf("backend: got %q", stats.Backend)
	}
}
