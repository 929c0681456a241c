package transcript

import (
	"context"
	"sort"
	"strings"

	"github.com/sorotlabs/sorot/internal/logging"
	"github.com/sorotlabs/sorot/internal/mediainfo"
)

// selector walks the fixed candidate precedence for one extraction call.
type selector struct {
	info  mediainfo.Info
	fetch *fetcher
	log   *logging.Logger
}

// best tries candidate tracks in priority order and returns the transcript
// of the first one that parses to a non-empty segment list:
//
//  1. manual subtitles in the target language
//  2. manual subtitles along the preference chain
//  3. automatic captions in the target language
//  4. automatic captions along the preference chain
//  5. any remaining manual subtitle, by ascending format priority
//  6. any remaining automatic caption, same ordering
//
// A candidate that fails to fetch or parse is skipped, never fatal. Returns
// nil when every candidate is exhausted.
func (s *selector) best(ctx context.Context, inventory *Inventory, targetLanguage string) *Transcript {
	for _, track := range inventory.ManualSubtitles {
		if track.Language == targetLanguage && Supported(track.FormatID) {
			if t := s.fromTrack(ctx, track.Language, track.FormatID, false); t != nil {
				return t
			}
		}
	}

	for _, lang := range preferredLanguages {
		if lang == targetLanguage {
			continue
		}
		for _, track := range inventory.ManualSubtitles {
			if track.Language == lang && Supported(track.FormatID) {
				if t := s.fromTrack(ctx, track.Language, track.FormatID, false); t != nil {
					return t
				}
			}
		}
	}

	for _, track := range inventory.AutomaticCaptions {
		if track.Language == targetLanguage && Supported(track.FormatID) {
			if t := s.fromTrack(ctx, track.Language, track.FormatID, true); t != nil {
				return t
			}
		}
	}

	for _, lang := range preferredLanguages {
		if lang == targetLanguage {
			continue
		}
		for _, track := range inventory.AutomaticCaptions {
			if track.Language == lang && Supported(track.FormatID) {
				if t := s.fromTrack(ctx, track.Language, track.FormatID, true); t != nil {
					return t
				}
			}
		}
	}

	for _, track := range byFormatPriority(inventory.ManualSubtitles) {
		if t := s.fromTrack(ctx, track.Language, track.FormatID, false); t != nil {
			return t
		}
	}

	for _, track := range byFormatPriority(inventory.AutomaticCaptions) {
		if t := s.fromTrack(ctx, track.Language, track.FormatID, true); t != nil {
			return t
		}
	}

	return nil
}

// byFormatPriority filters out unrecognized formats and orders the rest by
// ascending priority rank, preserving catalog order within equal ranks.
func byFormatPriority(tracks []Track) []Track {
	var supported []Track
	for _, track := range tracks {
		if Supported(track.FormatID) {
			supported = append(supported, track)
		}
	}
	sort.SliceStable(supported, func(i, j int) bool {
		return PriorityRank(supported[i].FormatID) < PriorityRank(supported[j].FormatID)
	})
	return supported
}

// fromTrack resolves, fetches and parses one (language, format) candidate.
// Returns nil when the candidate yields no usable segments.
func (s *selector) fromTrack(ctx context.Context, language, formatID string, isAutomatic bool) *Transcript {
	captions := s.info.Subtitles()
	if isAutomatic {
		captions = s.info.AutomaticCaptions()
	}

	var record *mediainfo.Track
	for i, candidate := range captions[language] {
		if candidate.Ext == formatID {
			record = &captions[language][i]
			break
		}
	}
	if record == nil {
		return nil
	}

	content := s.fetch.content(ctx, *record)
	if content == "" {
		return nil
	}

	segments := Parse(content, formatID)
	if len(segments) == 0 {
		s.log.Warnw("Subtitle track yielded no segments",
			"language", language,
			"format", formatID,
		)
		return nil
	}

	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.Text
	}
	fullText := strings.Join(texts, " ")
	wordCount := len(strings.Fields(fullText))

	maxEnd := segments[0].EndTime
	for _, seg := range segments[1:] {
		if seg.EndTime > maxEnd {
			maxEnd = seg.EndTime
		}
	}
	duration := maxEnd

	method := "manual_" + formatID
	if isAutomatic {
		method = "auto_" + formatID
	}

	return &Transcript{
		FullText:        fullText,
		Language:        language,
		ConfidenceScore: confidenceScore(segments, isAutomatic, formatID, wordCount),
		Segments:        segments,
		GeneratedMethod: method,
		WordCount:       wordCount,
		DurationSeconds: &duration,
	}
}
