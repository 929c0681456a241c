package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sorotlabs/sorot/internal/extractor"
	"github.com/sorotlabs/sorot/internal/logging"
)

// batch extraction request
type Request struct {
	URLs                     []string `json:"urls"`
	IncludeThumbnailAnalysis bool     `json:"include_thumbnail_analysis"`
	IncludeTranscript        bool     `json:"include_transcript"`
	PreferredLanguage        string   `json:"transcript_language,omitempty"`
	ParallelProcessing       bool     `json:"parallel_processing"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// outcome for one URL in a batch
type ProcessedVideo struct {
	URL    string                   `json:"url"`
	Status string                   `json:"status"`
	Data   *extractor.VideoMetadata `json:"data,omitempty"`
	Error  *ErrorInfo               `json:"error,omitempty"`
}

type Summary struct {
	TotalRequested   int   `json:"total_requested"`
	Successful       int   `json:"successful"`
	Failed           int   `json:"failed"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type Data struct {
	Processed []ProcessedVideo `json:"processed"`
	Failed    []ProcessedVideo `json:"failed"`
	Summary   Summary          `json:"summary"`
}

// single-URL extraction dependency
type MetadataExtractor interface {
	Extract(ctx context.Context, url string, opts extractor.Options) (*extractor.VideoMetadata, error)
}

// Processor fans a batch of URLs out over a bounded worker pool.
type Processor struct {
	extractor     MetadataExtractor
	maxURLs       int
	maxConcurrent int
	log           *logging.Logger
}

func NewProcessor(ext MetadataExtractor, maxURLs, maxConcurrent int, log *logging.Logger) *Processor {
	if maxURLs <= 0 {
		maxURLs = 3
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	return &Processor{
		extractor:     ext,
		maxURLs:       maxURLs,
		maxConcurrent: maxConcurrent,
		log:           log,
	}
}

// Process runs every URL of the request and compiles the per-URL outcomes
// into one result. One failing URL never aborts the rest of the batch.
func (p *Processor) Process(ctx context.Context, req Request, requestID string) (*Data, error) {
	started := time.Now()

	if len(req.URLs) == 0 {
		return nil, &extractor.Error{
			Code:    extractor.CodeValidation,
			Message: "No URLs provided",
		}
	}
	if len(req.URLs) > p.maxURLs {
		return nil, &extractor.Error{
			Code:    extractor.CodeValidation,
			Message: fmt.Sprintf("Too many URLs provided. Maximum allowed: %d", p.maxURLs),
			Details: map[string]any{"max_allowed": p.maxURLs, "provided": len(req.URLs)},
		}
	}

	var outcomes []ProcessedVideo
	if req.ParallelProcessing {
		outcomes = p.runParallel(ctx, req, requestID)
	} else {
		outcomes = p.runSequential(ctx, req, requestID)
	}

	return compile(outcomes, time.Since(started).Milliseconds()), nil
}

func (p *Processor) runSequential(ctx context.Context, req Request, requestID string) []ProcessedVideo {
	outcomes := make([]ProcessedVideo, len(req.URLs))
	for i, url := range req.URLs {
		outcomes[i] = p.processOne(ctx, url, req, requestID)
	}
	return outcomes
}

// runParallel processes URLs with up to maxConcurrent workers pulling from
// a shared queue. Result order matches request order.
func (p *Processor) runParallel(ctx context.Context, req Request, requestID string) []ProcessedVideo {
	outcomes := make([]ProcessedVideo, len(req.URLs))
	workChan := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < p.maxConcurrent && i < len(req.URLs); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-workChan:
					if !ok {
						return
					}
					outcomes[idx] = p.processOne(ctx, req.URLs[idx], req, requestID)
				}
			}
		}()
	}

	for i := range req.URLs {
		select {
		case <-ctx.Done():
		case workChan <- i:
			continue
		}
		break
	}
	close(workChan)
	wg.Wait()

	// slots skipped by cancellation still need a terminal status
	for i := range outcomes {
		if outcomes[i].URL == "" {
			outcomes[i] = ProcessedVideo{
				URL:    req.URLs[i],
				Status: "failed",
				Error: &ErrorInfo{
					Code:    extractor.CodeExtractionFailed,
					Message: "Batch processing cancelled",
					URL:     req.URLs[i],
				},
			}
		}
	}
	return outcomes
}

func (p *Processor) processOne(ctx context.Context, url string, req Request, requestID string) ProcessedVideo {
	metadata, err := p.extractor.Extract(ctx, url, extractor.Options{
		IncludeThumbnailAnalysis: req.IncludeThumbnailAnalysis,
		IncludeTranscript:        req.IncludeTranscript,
		PreferredLanguage:        req.PreferredLanguage,
		RequestID:                requestID,
	})
	if err != nil {
		p.log.Errorw("Batch URL failed", "url", url, "error", err)

		var extractErr *extractor.Error
		if errors.As(err, &extractErr) {
			return ProcessedVideo{
				URL:    url,
				Status: "failed",
				Error:  &ErrorInfo{Code: extractErr.Code, Message: extractErr.Message, URL: url},
			}
		}
		return ProcessedVideo{
			URL:    url,
			Status: "failed",
			Error: &ErrorInfo{
				Code:    extractor.CodeExtractionFailed,
				Message: "Technical error during extraction",
				URL:     url,
			},
		}
	}

	p.log.Infow("Batch URL processed", "url", url)
	return ProcessedVideo{URL: url, Status: "success", Data: metadata}
}

func compile(outcomes []ProcessedVideo, processingTimeMs int64) *Data {
	data := &Data{
		Processed: []ProcessedVideo{},
		Failed:    []ProcessedVideo{},
	}
	for _, outcome := range outcomes {
		if outcome.Status == "success" {
			data.Processed = append(data.Processed, outcome)
		} else {
			data.Failed = append(data.Failed, outcome)
		}
	}
	data.Summary = Summary{
		TotalRequested:   len(outcomes),
		Successful:       len(data.Processed),
		Failed:           len(data.Failed),
		ProcessingTimeMs: processingTimeMs,
	}
	return data
}
