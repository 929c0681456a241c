package transcript

import (
	"regexp"
)

var ttmlParagraphPattern = regexp.MustCompile(
	`<p[^>]*begin="([^"]*)"[^>]*end="([^"]*)"[^>]*>([^<]*)</p>`,
)

// parseTTML parses TTML content by extracting every <p begin end> element.
// Timestamps come in the clock form or as bare seconds ("12.5s").
func parseTTML(content string) []Segment {
	var segments []Segment

	for _, match := range ttmlParagraphPattern.FindAllStringSubmatch(content, -1) {
		startTime, err := ttmlTimeToSeconds(match[1])
		if err != nil {
			continue
		}
		endTime, err := ttmlTimeToSeconds(match[2])
		if err != nil {
			continue
		}

		text := CleanText(match[3])
		if text == "" {
			continue
		}

		segments = append(segments, Segment{
			StartTime: startTime,
			EndTime:   endTime,
			Text:      text,
		})
	}

	return segments
}
