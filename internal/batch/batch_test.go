package batch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sorotlabs/sorot/internal/extractor"
	"github.com/sorotlabs/sorot/internal/logging"
)

type stubExtractor struct {
	mu      sync.Mutex
	failing map[string]error
	calls   []string
}

func (s *stubExtractor) Extract(_ context.Context, url string, _ extractor.Options) (*extractor.VideoMetadata, error) {
	s.mu.Lock()
	s.calls = append(s.calls, url)
	s.mu.Unlock()

	if err, ok := s.failing[url]; ok {
		return nil, err
	}
	return &extractor.VideoMetadata{URL: url, Platform: "tiktok"}, nil
}

func newTestProcessor(ext MetadataExtractor, maxURLs int) *Processor {
	return NewProcessor(ext, maxURLs, 2, logging.NewNopLogger())
}

func TestProcessSequential(t *testing.T) {
	ext := &stubExtractor{}
	proc := newTestProcessor(ext, 3)

	data, err := proc.Process(context.Background(), Request{
		URLs: []string{"https://vm.tiktok.com/a/1", "https://vm.tiktok.com/b/2"},
	}, "req_batch1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Summary.TotalRequested != 2 || data.Summary.Successful != 2 || data.Summary.Failed != 0 {
		t.Errorf("summary: %+v", data.Summary)
	}
	if len(data.Processed) != 2 {
		t.Fatalf("processed: got %d", len(data.Processed))
	}
	if data.Processed[0].Status != "success" || data.Processed[0].Data == nil {
		t.Errorf("outcome 0: %+v", data.Processed[0])
	}
}

func TestProcessParallelPreservesOrder(t *testing.T) {
	ext := &stubExtractor{}
	proc := newTestProcessor(ext, 5)

	urls := []string{
		"https://vm.tiktok.com/a/1",
		"https://vm.tiktok.com/b/2",
		"https://vm.tiktok.com/c/3",
		"https://vm.tiktok.com/d/4",
	}
	data, err := proc.Process(context.Background(), Request{URLs: urls, ParallelProcessing: true}, "req_batch2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Summary.Successful != 4 {
		t.Fatalf("summary: %+v", data.Summary)
	}
	for i, outcome := range data.Processed {
		if outcome.URL != urls[i] {
			t.Errorf("position %d: got %q, want %q", i, outcome.URL, urls[i])
		}
	}
}

func TestProcessMixedOutcomes(t *testing.T) {
	ext := &stubExtractor{failing: map[string]error{
		"https://vm.tiktok.com/bad/2": &extractor.Error{
			Code:    extractor.CodeVideoUnavailable,
			Message: "Video unavailable: private",
		},
		"https://vm.tiktok.com/odd/3": errors.New("disk on fire"),
	}}
	proc := newTestProcessor(ext, 3)

	data, err := proc.Process(context.Background(), Request{URLs: []string{
		"https://vm.tiktok.com/ok/1",
		"https://vm.tiktok.com/bad/2",
		"https://vm.tiktok.com/odd/3",
	}}, "req_batch3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Summary.Successful != 1 || data.Summary.Failed != 2 {
		t.Fatalf("summary: %+v", data.Summary)
	}

	var coded, generic *ErrorInfo
	for _, outcome := range data.Failed {
		switch outcome.URL {
		case "https://vm.tiktok.com/bad/2":
			coded = outcome.Error
		case "https://vm.tiktok.com/odd/3":
			generic = outcome.Error
		}
	}

	if coded == nil || coded.Code != extractor.CodeVideoUnavailable {
		t.Errorf("coded error: %+v", coded)
	}
	if generic == nil || generic.Code != extractor.CodeExtractionFailed {
		t.Errorf("generic error: %+v", generic)
	}
	if generic != nil && generic.Message != "Technical error during extraction" {
		t.Errorf("generic message: %q", generic.Message)
	}
}

func TestProcessValidation(t *testing.T) {
	proc := newTestProcessor(&stubExtractor{}, 2)

	_, err := proc.Process(context.Background(), Request{}, "req_batch4")
	var extractErr *extractor.Error
	if !errors.As(err, &extractErr) || extractErr.Code != extractor.CodeValidation {
		t.Errorf("empty batch: got %v", err)
	}

	_, err = proc.Process(context.Background(), Request{URLs: []string{"a", "b", "c"}}, "req_batch5")
	if !errors.As(err, &extractErr) || extractErr.Code != extractor.CodeValidation {
		t.Fatalf("oversized batch: got %v", err)
	}
	if !strings.Contains(extractErr.Message, "Maximum allowed: 2") {
		t.Errorf("message: %q", extractErr.Message)
	}
}

func TestNewProcessorDefaults(t *testing.T) {
	proc := NewProcessor(&stubExtractor{}, 0, 0, logging.NewNopLogger())
	if proc.maxURLs != 3 {
		t.Errorf("max urls: got %d", proc.maxURLs)
	}
	if proc.maxConcurrent != 5 {
		t.Errorf("max concurrent: got %d", proc.maxConcurrent)
	}
}
