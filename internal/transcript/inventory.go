package transcript

import (
	"github.com/sorotlabs/sorot/internal/mediainfo"
)

// language preference chain: Indonesian first, then English variants
var preferredLanguages = []string{"id", "en", "en-US", "en-GB"}

// AnalyzeInventory flattens the manual and automatic caption maps of the raw
// info structure into a track catalog. Malformed records are skipped, never
// raised; the function has no failure mode.
func AnalyzeInventory(info mediainfo.Info) *Inventory {
	var manual, automatic []Track
	var languages []string
	seen := map[string]bool{}

	collect := func(captions map[string][]mediainfo.Track, isAutomatic bool) []Track {
		var tracks []Track
		for lang, records := range captions {
			if !seen[lang] {
				seen[lang] = true
				languages = append(languages, lang)
			}
			for _, record := range records {
				tracks = append(tracks, Track{
					FormatID:    record.Ext,
					Language:    lang,
					IsAutomatic: isAutomatic,
					URL:         record.URL,
					FileSize:    record.FileSize,
				})
			}
		}
		return tracks
	}

	manual = collect(info.Subtitles(), false)
	automatic = collect(info.AutomaticCaptions(), true)

	return &Inventory{
		ManualSubtitles:   manual,
		AutomaticCaptions: automatic,
		PreferredLanguage: determinePreferredLanguage(languages),
		TotalLanguages:    len(languages),
	}
}

// determinePreferredLanguage returns the first entry of the preference chain
// present among the available languages. With no match it falls back to the
// first language encountered; caption maps iterate in implementation-defined
// order, so that fallback is a first-seen pick, not a canonical one.
func determinePreferredLanguage(available []string) string {
	availableSet := map[string]bool{}
	for _, lang := range available {
		availableSet[lang] = true
	}

	for _, preferred := range preferredLanguages {
		if availableSet[preferred] {
			return preferred
		}
	}

	if len(available) > 0 {
		return available[0]
	}
	return ""
}
