package transcript

import (
	"regexp"
	"strings"

	"github.com/sorotlabs/sorot/internal/mediainfo"
)

var sentenceBoundaryPattern = regexp.MustCompile(`[.!?]+`)

// confidenceScore estimates transcript reliability in [0,1]. Manual tracks
// start from a higher base than automatic ones; higher-priority formats,
// longer texts and sane segment timing each add a small bonus.
func confidenceScore(segments []Segment, isAutomatic bool, formatID string, wordCount int) float64 {
	base := 0.8
	if isAutomatic {
		base = 0.6
	}

	rank := PriorityRank(formatID)
	formatScore := (10.0 - float64(rank)) / 10.0 * 0.1
	if formatScore < 0 {
		formatScore = 0
	}

	lengthScore := float64(wordCount) / 100.0
	if lengthScore > 1.0 {
		lengthScore = 1.0
	}
	lengthScore *= 0.1

	segmentScore := 0.0
	if len(segments) > 0 {
		var total float64
		for _, seg := range segments {
			total += seg.EndTime - seg.StartTime
		}
		avgDuration := total / float64(len(segments))
		if avgDuration >= 1.0 && avgDuration <= 5.0 {
			segmentScore = 0.1
		}
	}

	score := base + formatScore + lengthScore + segmentScore
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// assessQuality derives the heuristic quality signals for an extracted
// transcript against the raw video info.
func assessQuality(t *Transcript, info mediainfo.Info) *Quality {
	hasTiming := len(t.Segments) > 0

	hasPunctuation := strings.ContainsAny(t.FullText, ".,!?;:")

	completeness := 1.0
	if videoDuration, ok := info.Duration(); ok && videoDuration > 0 && t.DurationSeconds != nil {
		completeness = *t.DurationSeconds / videoDuration
		if completeness > 1.0 {
			completeness = 1.0
		}
	}

	readability := 0.5
	if t.WordCount > 10 {
		sentences := len(sentenceBoundaryPattern.Split(t.FullText, -1))
		if sentences > 0 {
			avgWordsPerSentence := float64(t.WordCount) / float64(sentences)
			if avgWordsPerSentence >= 5 && avgWordsPerSentence <= 20 {
				readability = 0.8
			} else if avgWordsPerSentence <= 30 {
				readability = 0.6
			}
		}
	}

	return &Quality{
		HasTimingInfo:     hasTiming,
		HasPunctuation:    hasPunctuation,
		CompletenessScore: completeness,
		ReadabilityScore:  readability,
	}
}
