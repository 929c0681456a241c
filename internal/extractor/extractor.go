package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sorotlabs/sorot/internal/cache"
	"github.com/sorotlabs/sorot/internal/logging"
	"github.com/sorotlabs/sorot/internal/mediainfo"
	"github.com/sorotlabs/sorot/internal/thumbnail"
	"github.com/sorotlabs/sorot/internal/transcript"
	"github.com/sorotlabs/sorot/internal/validate"
)

// source of raw video info for a URL
type MetadataSource interface {
	Extract(ctx context.Context, url string) (mediainfo.Info, error)
}

// transcript pipeline over extracted info
type TranscriptExtractor interface {
	Extract(ctx context.Context, info mediainfo.Info, preferredLanguage, requestID string) *transcript.Result
}

// Config carries the extraction behavior knobs.
type Config struct {
	ScraperAPIKey     string
	ScraperAPIBaseURL string
	ExtractionTimeout time.Duration
	CacheEnabled      bool
	CacheTTL          time.Duration
	EnableThumbnails  bool
}

// Options select the optional work for one extraction request.
type Options struct {
	IncludeThumbnailAnalysis bool
	IncludeTranscript        bool
	PreferredLanguage        string
	RequestID                string
}

// Service orchestrates validation, extraction, enrichment and caching for
// video metadata requests.
type Service struct {
	cfg         Config
	source      MetadataSource
	transcripts TranscriptExtractor
	analyzer    thumbnail.Analyzer // nil disables analysis
	store       cache.Store
	client      *http.Client
	log         *logging.Logger
}

func NewService(
	cfg Config,
	source MetadataSource,
	transcripts TranscriptExtractor,
	analyzer thumbnail.Analyzer,
	store cache.Store,
	log *logging.Logger,
) *Service {
	if cfg.ExtractionTimeout <= 0 {
		cfg.ExtractionTimeout = 60 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	return &Service{
		cfg:         cfg,
		source:      source,
		transcripts: transcripts,
		analyzer:    analyzer,
		store:       store,
		client:      &http.Client{Timeout: cfg.ExtractionTimeout},
		log:         log,
	}
}

// Extract produces the metadata for one video URL, serving from cache when
// possible. Thumbnail analysis and transcript extraction are best-effort:
// their failures degrade the payload instead of failing the request.
func (s *Service) Extract(ctx context.Context, videoURL string, opts Options) (*VideoMetadata, error) {
	started := time.Now()
	log := s.log.WithRequestID(opts.RequestID)

	if cached := s.fromCache(ctx, videoURL, opts); cached != nil {
		log.Infow("Cache hit", "url", videoURL)
		return cached, nil
	}

	platform := validate.Platform(videoURL)
	if !validate.VideoURL(videoURL) {
		return nil, errUnsupportedPlatform(videoURL, platform)
	}

	s.prewarm(ctx, videoURL, log)

	extractCtx, cancel := context.WithTimeout(ctx, s.cfg.ExtractionTimeout)
	defer cancel()

	info, err := s.source.Extract(extractCtx, videoURL)
	if err != nil {
		log.Errorw("Error extracting metadata", "url", videoURL, "error", err)
		return nil, classifyExtractionError(videoURL, err)
	}

	if !validate.IsVideoContent(info) {
		return nil, errNotVideoContent(videoURL, validate.ContentType(info))
	}

	metadata := s.assemble(ctx, videoURL, platform, info, opts, log)
	metadata.ProcessingTimeMs = time.Since(started).Milliseconds()

	s.toCache(ctx, videoURL, opts, metadata, log)

	log.Infow("Successfully extracted metadata", "url", videoURL, "platform", platform)
	return metadata, nil
}

// CacheStats reports the backing cache's counters.
func (s *Service) CacheStats(ctx context.Context) cache.Stats {
	if s.store == nil {
		return cache.Stats{Backend: "disabled"}
	}
	return s.store.Stats(ctx)
}

func (s *Service) fromCache(ctx context.Context, videoURL string, opts Options) *VideoMetadata {
	if !s.cfg.CacheEnabled || s.store == nil {
		return nil
	}

	key := cache.Key(videoURL, opts.IncludeThumbnailAnalysis, opts.IncludeTranscript)
	payload, ok := s.store.Get(ctx, key)
	if !ok {
		return nil
	}

	var metadata VideoMetadata
	if err := json.Unmarshal(payload, &metadata); err != nil {
		s.log.Warnw("Discarding corrupt cache entry", "key", key, "error", err)
		s.store.Delete(ctx, key)
		return nil
	}

	metadata.CacheHit = true
	return &metadata
}

func (s *Service) toCache(ctx context.Context, videoURL string, opts Options, metadata *VideoMetadata, log *logging.Logger) {
	if !s.cfg.CacheEnabled || s.store == nil {
		return
	}

	metadata.CacheHit = false
	payload, err := json.Marshal(metadata)
	if err != nil {
		log.Warnw("Failed to serialize metadata for cache", "url", videoURL, "error", err)
		return
	}

	key := cache.Key(videoURL, opts.IncludeThumbnailAnalysis, opts.IncludeTranscript)
	s.store.Set(ctx, key, payload, s.cfg.CacheTTL)
}

// prewarm routes one request through ScraperAPI so the target CDN sees a
// rotated IP before yt-dlp hits it. Failures are soft.
func (s *Service) prewarm(ctx context.Context, videoURL string, log *logging.Logger) {
	if s.cfg.ScraperAPIKey == "" || s.cfg.ScraperAPIBaseURL == "" {
		return
	}

	prewarmURL := fmt.Sprintf(
		"%s?api_key=%s&url=%s",
		s.cfg.ScraperAPIBaseURL,
		s.cfg.ScraperAPIKey,
		url.QueryEscape(videoURL),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, prewarmURL, nil)
	if err != nil {
		log.Warnw("ScraperAPI prewarm failed", "url", videoURL, "error", err)
		return
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warnw("ScraperAPI prewarm failed", "url", videoURL, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnw("ScraperAPI prewarm failed", "url", videoURL, "status", resp.StatusCode)
		return
	}
	log.Infow("ScraperAPI prewarm successful", "url", videoURL)
}

func (s *Service) assemble(
	ctx context.Context,
	videoURL, platform string,
	info mediainfo.Info,
	opts Options,
	log *logging.Logger,
) *VideoMetadata {
	metadata := &VideoMetadata{
		URL:          videoURL,
		Platform:     platform,
		Title:        info.Title(),
		Description:  info.Description(),
		Duration:     info.Count("duration"),
		ViewCount:    info.Count("view_count"),
		LikeCount:    info.Count("like_count"),
		CommentCount: info.Count("comment_count"),
		ShareCount:   info.Count("repost_count"),
		UploadDate:   info.UploadDate(),
		ThumbnailURL: info.Thumbnail(),
		ExtractedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if metadata.ThumbnailURL != "" && opts.IncludeThumbnailAnalysis && s.cfg.EnableThumbnails && s.analyzer != nil {
		analysis, err := s.analyzer.Analyze(ctx, metadata.ThumbnailURL)
		if err != nil {
			log.Warnw("Thumbnail analysis failed",
				"thumbnail_url", metadata.ThumbnailURL,
				"error", err,
			)
		} else {
			metadata.ThumbnailAnalysis = analysis
		}
	}

	if opts.IncludeTranscript && s.transcripts != nil {
		s.attachTranscript(ctx, metadata, info, opts, log)
	}

	return metadata
}

func (s *Service) attachTranscript(
	ctx context.Context,
	metadata *VideoMetadata,
	info mediainfo.Info,
	opts Options,
	log *logging.Logger,
) {
	result := s.transcripts.Extract(ctx, info, opts.PreferredLanguage, opts.RequestID)
	hasTranscript := result != nil && result.Success && result.Transcript != nil
	metadata.HasTranscript = &hasTranscript
	metadata.Transcript = result

	if !hasTranscript {
		message := "Unknown error"
		if result != nil && result.ErrorMessage != "" {
			message = result.ErrorMessage
		}
		log.Infow("Transcript extraction failed", "reason", message)
		return
	}

	metadata.TranscriptLanguage = result.Transcript.Language
	confidence := result.Transcript.ConfidenceScore
	metadata.TranscriptConfidence = &confidence

	if text := strings.TrimSpace(result.Transcript.FullText); text != "" {
		metadata.Description = fmt.Sprintf("%s\n\nTranscript: %s", metadata.Description, text)
	}

	log.Infow("Transcript extracted",
		"language", metadata.TranscriptLanguage,
		"confidence", confidence,
		"words", result.Transcript.WordCount,
	)
}

// classifyExtractionError maps yt-dlp failures to coded errors. Messages
// mentioning access problems become VIDEO_UNAVAILABLE.
func classifyExtractionError(videoURL string, err error) *Error {
	message := strings.ToLower(err.Error())
	for _, keyword := range []string{"private", "deleted", "unavailable", "not found"} {
		if strings.Contains(message, keyword) {
			return errVideoUnavailable(videoURL, err.Error())
		}
	}
	return errExtractionFailed(videoURL, err.Error())
}
