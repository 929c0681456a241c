package transcript

import (
	"regexp"
	"strings"
)

var srtTimeLinePattern = regexp.MustCompile(
	`(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})`,
)

// parseSRT parses SubRip content. Each block needs at least three lines:
// a cue index, a comma-millisecond time line, and one or more text lines.
func parseSRT(content string) []Segment {
	var segments []Segment

	for _, block := range blockBoundaryPattern.Split(content, -1) {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue
		}

		match := srtTimeLinePattern.FindStringSubmatch(lines[1])
		if match == nil {
			continue
		}

		startTime, err := srtTimeToSeconds(match[1])
		if err != nil {
			continue
		}
		endTime, err := srtTimeToSeconds(match[2])
		if err != nil {
			continue
		}

		text := CleanText(strings.Join(lines[2:], " "))
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
