package extractor

import "fmt"

// machine-readable failure codes carried to API clients
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeUnsupportedPlatform = "UNSUPPORTED_PLATFORM"
	CodeVideoUnavailable    = "VIDEO_UNAVAILABLE"
	CodeNotVideoContent     = "NOT_VIDEO_CONTENT"
	CodeExtractionFailed    = "EXTRACTION_FAILED"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// Error is a coded extraction failure with optional structured details.
type Error struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

func errUnsupportedPlatform(url, platform string) *Error {
	return &Error{
		Code:    CodeUnsupportedPlatform,
		Message: fmt.Sprintf("URL is not from a supported platform: %s", platform),
		Details: map[string]any{"url": url, "platform": platform},
	}
}

func errVideoUnavailable(url, reason string) *Error {
	return &Error{
		Code:    CodeVideoUnavailable,
		Message: fmt.Sprintf("Video unavailable: %s", reason),
		Details: map[string]any{"url": url, "reason": reason},
	}
}

func errNotVideoContent(url, contentType string) *Error {
	return &Error{
		Code:    CodeNotVideoContent,
		Message: fmt.Sprintf("URL contains %s, not a video. Please provide a video URL.", contentType),
		Details: map[string]any{"url": url, "content_type": contentType},
	}
}

func errExtractionFailed(url, reason string) *Error {
	return &Error{
		Code:    CodeExtractionFailed,
		Message: fmt.Sprintf("Failed to extract video: %s", reason),
		Details: map[string]any{"url": url, "reason": reason},
	}
}
