package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// converts a WebVTT timestamp (HH:MM:SS.mmm) to seconds
func vttTimeToSeconds(timeStr string) (float64, error) {
	return clockTimeToSeconds(timeStr, ".")
}

// converts an SRT timestamp (HH:MM:SS,mmm) to seconds
func srtTimeToSeconds(timeStr string) (float64, error) {
	return clockTimeToSeconds(timeStr, ",")
}

// converts a TTML timestamp to seconds; accepts the clock form HH:MM:SS.mmm
// or a bare-seconds form like "125.5s"
func ttmlTimeToSeconds(timeStr string) (float64, error) {
	if strings.Contains(timeStr, ":") {
		return vttTimeToSeconds(timeStr)
	}
	seconds, err := strconv.ParseFloat(strings.TrimSuffix(timeStr, "s"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds timestamp %q: %w", timeStr, err)
	}
	return seconds, nil
}

func clockTimeToSeconds(timeStr, millisSep string) (float64, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock timestamp %q", timeStr)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q: %w", timeStr, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q: %w", timeStr, err)
	}

	secondsParts := strings.SplitN(parts[2], millisSep, 2)
	seconds, err := strconv.Atoi(secondsParts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in %q: %w", timeStr, err)
	}

	millis := 0
	if len(secondsParts) == 2 {
		millis, err = strconv.Atoi(secondsParts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid milliseconds in %q: %w", timeStr, err)
		}
	}

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) +
		float64(millis)/1000.0, nil
}
