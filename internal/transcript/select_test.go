package transcript

import (
	"context"
	"testing"

	"github.com/sorotlabs/sorot/internal/logging"
	"github.com/sorotlabs/sorot/internal/mediainfo"
)

const (
	sampleVTT = "WEBVTT\n\n00:00:01.000 --> 00:00:05.000\nHello world\n"

	sampleJSON3 = `{"events": [{"tStartMs": 0, "dDurationMs": 3000, "segs": [{"utf8": "Automatic text"}]}]}`
)

func newTestSelector(info mediainfo.Info) *selector {
	log := logging.NewNopLogger()
	return &selector{info: info, fetch: newFetcher(log), log: log}
}

func TestSelectManualTargetBeatsAutomatic(t *testing.T) {
	info := mediainfo.Info{
		"subtitles": map[string]any{
			"id": []any{map[string]any{"ext": "vtt", "data": sampleVTT}},
		},
		"automatic_captions": map[string]any{
			"id": []any{map[string]any{"ext": "json3", "data": sampleJSON3}},
			"en": []any{map[string]any{"ext": "json3", "data": sampleJSON3}},
		},
	}

	sel := newTestSelector(info)
	got := sel.best(context.Background(), AnalyzeInventory(info), "id")
	if got == nil {
		t.Fatal("expected a transcript")
	}
	if got.GeneratedMethod != "manual_vtt" {
		t.Errorf("method: got %q, want %q", got.GeneratedMethod, "manual_vtt")
	}
	if got.Language != "id" {
		t.Errorf("language: got %q, want %q", got.Language, "id")
	}
}

func TestSelectPreferenceChainSkipsTarget(t *testing.T) {
	// target id is absent; the chain must move on to en without retrying id
	info := mediainfo.Info{
		"subtitles": map[string]any{
			"en": []any{map[string]any{"ext": "vtt", "data": sampleVTT}},
			"fr": []any{map[string]any{"ext": "vtt", "data": sampleVTT}},
		},
	}

	sel := newTestSelector(info)
	got := sel.best(context.Background(), AnalyzeInventory(info), "id")
	if got == nil {
		t.Fatal("expected a transcript")
	}
	if got.Language != "en" {
		t.Errorf("language: got %q, want %q", got.Language, "en")
	}
}

func TestSelectAutomaticWhenNoManual(t *testing.T) {
	info := mediainfo.Info{
		"automatic_captions": map[string]any{
			"id": []any{map[string]any{"ext": "json3", "data": sampleJSON3}},
		},
	}

	sel := newTestSelector(info)
	got := sel.best(context.Background(), AnalyzeInventory(info), "id")
	if got == nil {
		t.Fatal("expected a transcript")
	}
	if got.GeneratedMethod != "auto_json3" {
		t.Errorf("method: got %q, want %q", got.GeneratedMethod, "auto_json3")
	}
}

func TestSelectFallsBackToAnyLanguageByFormatRank(t *testing.T) {
	// nothing in the preference chain; srt must lose to vtt
	info := mediainfo.Info{
		"subtitles": map[string]any{
			"ja": []any{map[string]any{"ext": "srt", "data": "1\n00:00:01,000 --> 00:00:02,000\nKonnichiwa\n"}},
			"ko": []any{map[string]any{"ext": "vtt", "data": sampleVTT}},
		},
	}

	sel := newTestSelector(info)
	got := sel.best(context.Background(), AnalyzeInventory(info), "id")
	if got == nil {
		t.Fatal("expected a transcript")
	}
	if got.GeneratedMethod != "manual_vtt" {
		t.Errorf("method: got %q, want %q", got.GeneratedMethod, "manual_vtt")
	}
	if got.Language != "ko" {
		t.Errorf("language: got %q, want %q", got.Language, "ko")
	}
}

func TestSelectSkipsUnparsableCandidates(t *testing.T) {
	// the target-language track is garbage; selection moves down the chain
	info := mediainfo.Info{
		"subtitles": map[string]any{
			"id": []any{map[string]any{"ext": "vtt", "data": "not really vtt"}},
			"en": []any{map[string]any{"ext": "vtt", "data": sampleVTT}},
		},
	}

	sel := newTestSelector(info)
	got := sel.best(context.Background(), AnalyzeInventory(info), "id")
	if got == nil {
		t.Fatal("expected a transcript")
	}
	if got.Language != "en" {
		t.Errorf("language: got %q, want %q", got.Language, "en")
	}
}

func TestSelectExhaustedReturnsNil(t *testing.T) {
	info := mediainfo.Info{
		"subtitles": map[string]any{
			"en": []any{map[string]any{"ext": "vtt", "data": "garbage"}},
		},
	}

	sel := newTestSelector(info)
	if got := sel.best(context.Background(), AnalyzeInventory(info), "id"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestByFormatPriority(t *testing.T) {
	tracks := []Track{
		{FormatID: "ttml", Language: "en"},
		{FormatID: "ass", Language: "en"},
		{FormatID: "vtt", Language: "en"},
		{FormatID: "json3", Language: "en"},
	}

	ordered := byFormatPriority(tracks)
	if len(ordered) != 3 {
		t.Fatalf("expected 3 supported tracks, got %d", len(ordered))
	}

	want := []string{"vtt", "json3", "ttml"}
	for i, formatID := range want {
		if ordered[i].FormatID != formatID {
			t.Errorf("position %d: got %q, want %q", i, ordered[i].FormatID, formatID)
		}
	}
}

func TestFromTrackTranscriptFields(t *testing.T) {
	info := mediainfo.Info{
		"subtitles": map[string]any{
			"en": []any{map[string]any{"ext": "vtt", "data": sampleVTT}},
		},
	}

	sel := newTestSelector(info)
	got := sel.fromTrack(context.Background(), "en", "vtt", false)
	if got == nil {
		t.Fatal("expected a transcript")
	}

	if got.FullText != "Hello world" {
		t.Errorf("full text: got %q", got.FullText)
	}
	if got.WordCount != 2 {
		t.Errorf("word count: got %d, want 2", got.WordCount)
	}
	if got.DurationSeconds == nil || *got.DurationSeconds != 5.0 {
		t.Errorf("duration: got %v, want 5", got.DurationSeconds)
	}
	if got.ConfidenceScore <= 0 || got.ConfidenceScore > 1 {
		t.Errorf("confidence out of range: %v", got.ConfidenceScore)
	}
}
