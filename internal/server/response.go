package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const apiVersion = "1.0.0"

type Metadata struct {
	RequestID  string `json:"request_id"`
	APIVersion string `json:"api_version"`
	Timestamp  string `json:"timestamp"`
}

type ErrorInfo struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success  bool     `json:"success"`
	Data     any      `json:"data"`
	Metadata Metadata `json:"metadata"`
}

type ErrorResponse struct {
	Success  bool      `json:"success"`
	Error    ErrorInfo `json:"error"`
	Metadata Metadata  `json:"metadata"`
}

// error code to HTTP status mapping; unknown codes are server errors
var statusForCode = map[string]int{
	"VALIDATION_ERROR":          http.StatusBadRequest,
	"UNSUPPORTED_PLATFORM":      http.StatusUnprocessableEntity,
	"VIDEO_UNAVAILABLE":         http.StatusUnprocessableEntity,
	"NOT_VIDEO_CONTENT":         http.StatusUnprocessableEntity,
	"EXTRACTION_FAILED":         http.StatusInternalServerError,
	"THUMBNAIL_ANALYSIS_FAILED": http.StatusInternalServerError,
	"RATE_LIMIT_EXCEEDED":       http.StatusTooManyRequests,
	"API_KEY_INVALID":           http.StatusUnauthorized,
	"SERVICE_UNAVAILABLE":       http.StatusServiceUnavailable,
	"TIMEOUT":                   http.StatusRequestTimeout,
	"CACHE_ERROR":               http.StatusInternalServerError,
	"CONFIGURATION_ERROR":       http.StatusInternalServerError,
}

func newRequestID() string {
	return "req_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func responseMetadata(requestID string) Metadata {
	return Metadata{
		RequestID:  requestID,
		APIVersion: apiVersion,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

func respondSuccess(c *gin.Context, requestID string, data any) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success:  true,
		Data:     data,
		Metadata: responseMetadata(requestID),
	})
}

func respondError(c *gin.Context, requestID, code, message string, details map[string]any) {
	status, ok := statusForCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, ErrorResponse{
		Success: false,
		Error: ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
		Metadata: responseMetadata(requestID),
	})
}
