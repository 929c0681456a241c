package mediainfo

import (
	"encoding/json"
	"fmt"
)

// Info is the raw metadata object yt-dlp produces for a single video.
// Accessors tolerate missing or malformed keys and report absence instead
// of failing.
type Info map[string]any

// one downloadable subtitle track record inside a caption map
type Track struct {
	Ext      string
	URL      string
	Data     string
	FileSize *int64
}

func Parse(data []byte) (Info, error) {
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse media info: %w", err)
	}
	return info, nil
}

func (in Info) String(key string) string {
	if in == nil {
		return ""
	}
	if v, ok := in[key].(string); ok {
		return v
	}
	return ""
}

func (in Info) Float(key string) (float64, bool) {
	if in == nil {
		return 0, false
	}
	switch v := in[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func (in Info) Int64(key string) (int64, bool) {
	f, ok := in.Float(key)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// Count returns an optional integer counter field (view_count etc).
func (in Info) Count(key string) *int64 {
	if n, ok := in.Int64(key); ok {
		return &n
	}
	return nil
}

// Duration returns the video duration in seconds when present.
func (in Info) Duration() (float64, bool) {
	return in.Float("duration")
}

func (in Info) Title() string       { return in.String("title") }
func (in Info) Description() string { return in.String("description") }
func (in Info) Thumbnail() string   { return in.String("thumbnail") }
func (in Info) UploadDate() string  { return in.String("upload_date") }

// Subtitles returns the manual caption map keyed by language code.
func (in Info) Subtitles() map[string][]Track {
	return in.captionMap("subtitles")
}

// AutomaticCaptions returns the machine-generated caption map.
func (in Info) AutomaticCaptions() map[string][]Track {
	return in.captionMap("automatic_captions")
}

func (in Info) captionMap(key string) map[string][]Track {
	out := map[string][]Track{}
	if in == nil {
		return out
	}
	raw, ok := in[key].(map[string]any)
	if !ok {
		return out
	}
	for lang, entry := range raw {
		list, ok := entry.([]any)
		if !ok {
			continue
		}
		var tracks []Track
		for _, item := range list {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			track := Track{
				Ext:  stringField(record, "ext"),
				URL:  stringField(record, "url"),
				Data: stringField(record, "data"),
			}
			if track.Ext == "" {
				track.Ext = "unknown"
			}
			if size, ok := floatField(record, "filesize"); ok {
				n := int64(size)
				track.FileSize = &n
			}
			tracks = append(tracks, track)
		}
		if len(tracks) > 0 {
			out[lang] = tracks
		}
	}
	return out
}

func stringField(record map[string]any, key string) string {
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}

func floatField(record map[string]any, key string) (float64, bool) {
	switch v := record[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
