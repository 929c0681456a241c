package transcript

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sorotlabs/sorot/internal/logging"
	"github.com/sorotlabs/sorot/internal/mediainfo"
)

const (
	errNoSubtitles     = "No subtitles or captions available for this video"
	errExtractionEmpty = "Failed to extract readable transcript from available subtitles"
)

// Service extracts transcripts from the caption tracks carried by a raw
// yt-dlp info structure. Every invocation works on its own input and builds
// fresh result objects; the service holds no per-call state.
type Service struct {
	log             *logging.Logger
	defaultLanguage string
	fetch           *fetcher
}

func NewService(log *logging.Logger, defaultLanguage string) *Service {
	if defaultLanguage == "" {
		defaultLanguage = "id"
	}
	return &Service{
		log:             log,
		defaultLanguage: defaultLanguage,
		fetch:           newFetcher(log),
	}
}

// Extract selects, fetches, parses and scores the best available caption
// track. It always returns a well-formed Result and never an error: track
// exhaustion, fetch failures and parse failures surface as a structured
// failure result, and an unexpected panic anywhere in the pipeline is
// converted to one at this boundary.
func (s *Service) Extract(
	ctx context.Context,
	info mediainfo.Info,
	preferredLanguage string,
	requestID string,
) (result *Result) {
	started := time.Now()
	log := s.log.WithRequestID(requestID)

	defer func() {
		if r := recover(); r != nil {
			log.Errorw("Error extracting transcript", "error", r)
			result = &Result{
				Success:      false,
				ErrorMessage: fmt.Sprintf("Transcript extraction failed: %v", r),
			}
		}
	}()

	inventory := AnalyzeInventory(info)

	if len(inventory.ManualSubtitles) == 0 && len(inventory.AutomaticCaptions) == 0 {
		return &Result{
			Success:            false,
			AvailableSubtitles: inventory,
			ErrorMessage:       errNoSubtitles,
			FallbackUsed:       false,
		}
	}

	targetLanguage := preferredLanguage
	if targetLanguage == "" {
		targetLanguage = s.defaultLanguage
	}

	sel := &selector{info: info, fetch: s.fetch, log: log}
	transcript := sel.best(ctx, inventory, targetLanguage)

	if transcript == nil {
		return &Result{
			Success:            false,
			AvailableSubtitles: inventory,
			ErrorMessage:       errExtractionEmpty,
			FallbackUsed:       true,
		}
	}

	quality := assessQuality(transcript, info)
	transcript.ProcessingTimeMs = time.Since(started).Milliseconds()

	log.Infow("Successfully extracted transcript",
		"language", transcript.Language,
		"segments", len(transcript.Segments),
		"words", transcript.WordCount,
	)

	return &Result{
		Success:            true,
		Transcript:         transcript,
		AvailableSubtitles: inventory,
		QualityAssessment:  quality,
		FallbackUsed:       strings.HasPrefix(transcript.GeneratedMethod, "auto_"),
	}
}
