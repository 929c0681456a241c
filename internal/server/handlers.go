package server

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sorotlabs/sorot/internal/batch"
	"github.com/sorotlabs/sorot/internal/cache"
	"github.com/sorotlabs/sorot/internal/extractor"
	"github.com/sorotlabs/sorot/internal/logging"
	"github.com/sorotlabs/sorot/internal/validate"
)

// single-URL extraction dependency
type MetadataService interface {
	Extract(ctx context.Context, url string, opts extractor.Options) (*extractor.VideoMetadata, error)
	CacheStats(ctx context.Context) cache.Stats
}

// batch extraction dependency
type BatchService interface {
	Process(ctx context.Context, req batch.Request, requestID string) (*batch.Data, error)
}

type ExtractRequest struct {
	URL                      string `json:"url" binding:"required"`
	IncludeThumbnailAnalysis *bool  `json:"include_thumbnail_analysis"`
	IncludeTranscript        bool   `json:"include_transcript"`
	TranscriptLanguage       string `json:"transcript_language"`
}

// Limits describes the service-wide usage limits exposed on the
// supported-platforms endpoint.
type Limits struct {
	MaxURLsPerBatch    int `json:"max_urls_per_batch"`
	RateLimitPerMinute int `json:"rate_limit_per_minute"`
	MaxVideoDuration   int `json:"max_video_duration"`
}

type Handler struct {
	metadata MetadataService
	batches  BatchService
	limits   Limits
	started  time.Time
	log      *logging.Logger

	totalExtractions      atomic.Int64
	successfulExtractions atomic.Int64
	failedExtractions     atomic.Int64
	totalProcessingMs     atomic.Int64

	mu          sync.Mutex
	errorCounts map[string]int64
}

func NewHandler(metadata MetadataService, batches BatchService, limits Limits, log *logging.Logger) *Handler {
	return &Handler{
		metadata:    metadata,
		batches:     batches,
		limits:      limits,
		started:     time.Now(),
		log:         log,
		errorCounts: map[string]int64{},
	}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Video Scraper Service is running"})
}

func (h *Handler) Health(c *gin.Context) {
	stats := h.metadata.CacheStats(c.Request.Context())
	respondSuccess(c, requestID(c), gin.H{
		"status":         "healthy",
		"version":        apiVersion,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"cache":          stats,
	})
}

// Extract handles single-URL metadata extraction.
func (h *Handler) Extract(c *gin.Context) {
	id := requestID(c)

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, id, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	includeThumbnails := true
	if req.IncludeThumbnailAnalysis != nil {
		includeThumbnails = *req.IncludeThumbnailAnalysis
	}

	metadata, err := h.metadata.Extract(c.Request.Context(), req.URL, extractor.Options{
		IncludeThumbnailAnalysis: includeThumbnails,
		IncludeTranscript:        req.IncludeTranscript,
		PreferredLanguage:        req.TranscriptLanguage,
		RequestID:                id,
	})
	if err != nil {
		h.recordFailure(extractionErrorCode(err, "EXTRACTION_FAILED"))
		h.respondExtractionError(c, id, err, "EXTRACTION_FAILED")
		return
	}

	h.recordSuccess(metadata.ProcessingTimeMs)
	respondSuccess(c, id, metadata)
}

// ExtractBatch handles multi-URL extraction.
func (h *Handler) ExtractBatch(c *gin.Context) {
	id := requestID(c)

	var req batch.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, id, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	data, err := h.batches.Process(c.Request.Context(), req, id)
	if err != nil {
		h.respondExtractionError(c, id, err, "BATCH_PROCESSING_FAILED")
		return
	}

	for _, item := range data.Processed {
		var ms int64
		if item.Data != nil {
			ms = item.Data.ProcessingTimeMs
		}
		h.recordSuccess(ms)
	}
	for _, item := range data.Failed {
		code := "EXTRACTION_FAILED"
		if item.Error != nil {
			code = item.Error.Code
		}
		h.recordFailure(code)
	}

	respondSuccess(c, id, data)
}

func (h *Handler) CacheStats(c *gin.Context) {
	respondSuccess(c, requestID(c), h.metadata.CacheStats(c.Request.Context()))
}

// SupportedPlatforms reports platform capabilities and service limits.
func (h *Handler) SupportedPlatforms(c *gin.Context) {
	respondSuccess(c, requestID(c), gin.H{
		"platforms":   validate.SupportedPlatforms(),
		"limitations": h.limits,
	})
}

// Stats reports extraction counters collected since startup.
func (h *Handler) Stats(c *gin.Context) {
	total := h.totalExtractions.Load()
	successful := h.successfulExtractions.Load()
	failed := h.failedExtractions.Load()

	var successRate float64
	if total > 0 {
		successRate = float64(successful) / float64(total)
	}
	var avgProcessingMs int64
	if successful > 0 {
		avgProcessingMs = h.totalProcessingMs.Load() / successful
	}

	h.mu.Lock()
	errorBreakdown := make(map[string]int64, len(h.errorCounts))
	for code, count := range h.errorCounts {
		errorBreakdown[code] = count
	}
	h.mu.Unlock()

	respondSuccess(c, requestID(c), gin.H{
		"service_stats": gin.H{
			"total_extractions":      total,
			"successful_extractions": successful,
			"failed_extractions":     failed,
			"success_rate":           successRate,
			"avg_processing_time_ms": avgProcessingMs,
		},
		"platform_breakdown": gin.H{
			"tiktok": gin.H{
				"count":        total,
				"success_rate": successRate,
			},
		},
		"error_breakdown": errorBreakdown,
		"cache_stats":     h.metadata.CacheStats(c.Request.Context()),
	})
}

func (h *Handler) recordSuccess(processingMs int64) {
	h.totalExtractions.Add(1)
	h.successfulExtractions.Add(1)
	h.totalProcessingMs.Add(processingMs)
}

func (h *Handler) recordFailure(code string) {
	h.totalExtractions.Add(1)
	h.failedExtractions.Add(1)
	h.mu.Lock()
	h.errorCounts[code]++
	h.mu.Unlock()
}

func extractionErrorCode(err error, fallbackCode string) string {
	var extractErr *extractor.Error
	if errors.As(err, &extractErr) {
		return extractErr.Code
	}
	return fallbackCode
}

func (h *Handler) respondExtractionError(c *gin.Context, id string, err error, fallbackCode string) {
	h.log.Errorw("Request failed", "request_id", id, "error", err)

	var extractErr *extractor.Error
	if errors.As(err, &extractErr) {
		respondError(c, id, extractErr.Code, extractErr.Message, extractErr.Details)
		return
	}
	respondError(c, id, fallbackCode, err.Error(), nil)
}
