package transcript

import (
	"encoding/json"
	"strings"
)

type json3Event struct {
	TStartMs    *float64 `json:"tStartMs"`
	DDurationMs *float64 `json:"dDurationMs"`
	Segs        []struct {
		UTF8 string `json:"utf8"`
	} `json:"segs"`
}

type json3Document struct {
	Events []json3Event `json:"events"`
}

// parseJSON3 parses YouTube's json3 caption payload. Only events carrying
// both a start and a duration yield segments; the segment text is the
// concatenation of the event's utf8 runs.
func parseJSON3(content string) []Segment {
	var doc json3Document
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil
	}

	var segments []Segment
	for _, event := range doc.Events {
		if event.TStartMs == nil || event.DDurationMs == nil {
			continue
		}

		startTime := *event.TStartMs / 1000.0
		endTime := startTime + *event.DDurationMs/1000.0

		var sb strings.Builder
		for _, seg := range event.Segs {
			sb.WriteString(seg.UTF8)
		}

		text := CleanText(sb.String())
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
