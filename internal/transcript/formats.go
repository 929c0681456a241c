package transcript

// Format identifies a subtitle markup dialect.
type Format string

const (
	FormatVTT   Format = "vtt"
	FormatSRT   Format = "srt"
	FormatJSON3 Format = "json3"
	FormatSRV1  Format = "srv1"
	FormatSRV2  Format = "srv2"
	FormatSRV3  Format = "srv3"
	FormatTTML  Format = "ttml"
)

// rank assigned to format ids outside the known set; keeps them last in any
// priority ordering and contributes nothing to confidence
const unrankedPriority = 999

type formatEntry struct {
	priority int
	parse    func(content string) []Segment
}

// the full set of subtitle formats this service can parse; ids outside this
// table are never selected
var knownFormats = map[Format]formatEntry{
	FormatVTT:   {priority: 1, parse: parseVTT},
	FormatSRT:   {priority: 2, parse: parseSRT},
	FormatJSON3: {priority: 3, parse: parseJSON3},
	FormatSRV1:  {priority: 4, parse: parseSRV},
	FormatSRV2:  {priority: 5, parse: parseSRV},
	FormatSRV3:  {priority: 6, parse: parseSRV},
	FormatTTML:  {priority: 7, parse: parseTTML},
}

// Supported reports whether the format id belongs to the known set.
func Supported(formatID string) bool {
	_, ok := knownFormats[Format(formatID)]
	return ok
}

// PriorityRank returns the fixed tiebreak rank for a format id; lower ranks
// are tried first.
func PriorityRank(formatID string) int {
	if entry, ok := knownFormats[Format(formatID)]; ok {
		return entry.priority
	}
	return unrankedPriority
}

// Parse dispatches raw subtitle content to the parser for the given format.
// Unknown formats and structurally malformed content yield an empty segment
// list, never an error.
func Parse(content, formatID string) []Segment {
	entry, ok := knownFormats[Format(formatID)]
	if !ok {
		return nil
	}
	return entry.parse(content)
}
