package transcript

import (
	"regexp"
	"strings"
)

var (
	blockBoundaryPattern = regexp.MustCompile(`\n\n+`)
	vttTimeLinePattern   = regexp.MustCompile(
		`(\d{2}:\d{2}:\d{2}\.\d{3}) --> (\d{2}:\d{2}:\d{2}\.\d{3})`,
	)
)

// parseVTT parses WebVTT content. The payload is split on blank-line
// boundaries into cue blocks; within each block the first line carrying a
// "start --> end" timestamp marks the cue, and every following line is cue
// text. Cues whose cleaned text is empty are dropped.
func parseVTT(content string) []Segment {
	var segments []Segment

	for _, block := range blockBoundaryPattern.Split(content, -1) {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}

		var match []string
		textStart := 0
		for i, line := range lines {
			if m := vttTimeLinePattern.FindStringSubmatch(line); m != nil {
				match = m
				textStart = i + 1
				break
			}
		}
		if match == nil || textStart >= len(lines) {
			continue
		}

		startTime, err := vttTimeToSeconds(match[1])
		if err != nil {
			continue
		}
		endTime, err := vttTimeToSeconds(match[2])
		if err != nil {
			continue
		}

		text := CleanText(strings.Join(lines[textStart:], " "))
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
