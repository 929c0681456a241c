package transcript

import (
	"regexp"
	"strconv"
)

var srvTextPattern = regexp.MustCompile(
	`<text start="([^"]*)"(?:\s+dur="([^"]*)")?[^>]*>([^<]*)</text>`,
)

// dur is optional in srv payloads; a missing value falls back to 3 seconds.
// The fallback matches observed yt-dlp output, not any documented contract.
const srvDefaultDuration = 3.0

// parseSRV parses YouTube's XML-flavored srv1/srv2/srv3 caption payloads by
// extracting every <text start dur> element.
func parseSRV(content string) []Segment {
	var segments []Segment

	for _, match := range srvTextPattern.FindAllStringSubmatch(content, -1) {
		startTime, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}

		duration := srvDefaultDuration
		if match[2] != "" {
			duration, err = strconv.ParseFloat(match[2], 64)
			if err != nil {
				continue
			}
		}

		text := CleanText(match[3])
		if text == "" {
			continue
		}

		segments = append(segments, Segment{
			StartTime: startTime,
			EndTime:   startTime + duration,
			Text:      text,
		})
	}

	return segments
}
