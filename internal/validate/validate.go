package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/sorotlabs/sorot/internal/mediainfo"
)

// domains accepted for extraction; suffix-matched against the URL host
var supportedDomains = []string{
	"tiktok.com",
	"www.tiktok.com",
	"vm.tiktok.com",
	"vt.tiktok.com",
	"m.tiktok.com",
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?tiktok\.com/@[\w.-]+/video/(\d+)`),
	regexp.MustCompile(`(?:https?://)?(?:vm\.|vt\.)?tiktok\.com/[\w.-]+/(\d+)`),
	regexp.MustCompile(`(?:https?://)?(?:m\.)?tiktok\.com/v/(\d+)`),
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// PlatformInfo describes one supported platform's capabilities, as exposed
// by the public API.
type PlatformInfo struct {
	Name              string   `json:"name"`
	Domain            string   `json:"domain"`
	SupportedFeatures []string `json:"supported_features"`
	URLPatterns       []string `json:"url_patterns"`
}

// SupportedPlatforms lists every platform this service can extract from,
// keyed to the same domain allowlist the URL validator uses.
func SupportedPlatforms() []PlatformInfo {
	return []PlatformInfo{
		{
			Name:   "tiktok",
			Domain: supportedDomains[0],
			SupportedFeatures: []string{
				"metadata_extraction",
				"thumbnail_analysis",
				"engagement_metrics",
			},
			URLPatterns: []string{
				"https://www.tiktok.com/@{username}/video/{video_id}",
				"https://vm.tiktok.com/{short_id}",
				"https://vt.tiktok.com/{short_id}",
			},
		},
	}
}

// VideoURL reports whether the URL belongs to a supported platform.
func VideoURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Host)
	for _, domain := range supportedDomains {
		if strings.HasSuffix(host, domain) {
			return true
		}
	}
	return false
}

// Platform names the platform a URL belongs to, or "unknown".
func Platform(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	if strings.Contains(strings.ToLower(parsed.Host), "tiktok.com") {
		return "tiktok"
	}
	return "unknown"
}

// VideoID pulls the numeric video id out of a TikTok URL. Canonical URL
// shapes are matched first; as a last resort any long numeric path segment
// is accepted, since TikTok ids are long numbers.
func VideoID(rawURL string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}

	if parsed, err := url.Parse(rawURL); err == nil {
		for _, part := range strings.Split(parsed.Path, "/") {
			if len(part) > 10 && digitsOnly.MatchString(part) {
				return part, nil
			}
		}
	}

	return "", fmt.Errorf("could not extract video ID from URL: %s", rawURL)
}

// IsVideoContent checks that extracted info describes an actual video:
// a positive duration plus at least one video indicator (format, video URL,
// codec, dimensions or an explicit video type).
func IsVideoContent(info mediainfo.Info) bool {
	if len(info) == 0 {
		return false
	}

	duration, ok := info.Duration()
	if !ok || duration <= 0 {
		return false
	}

	hasFormat := info.String("format") != "" || info.String("format_id") != ""

	mediaURL := strings.ToLower(info.String("url"))
	hasVideoURL := mediaURL != "" &&
		(strings.Contains(mediaURL, "video") || strings.Contains(mediaURL, "mp4"))

	vcodec := info.String("vcodec")
	hasCodec := vcodec != "" && vcodec != "none"

	width, _ := info.Float("width")
	height, _ := info.Float("height")
	hasDimensions := width > 0 && height > 0

	mediaType := strings.ToLower(info.String("_type"))
	isVideoType := strings.Contains(mediaType, "video")

	return hasFormat || hasVideoURL || hasCodec || hasDimensions || isVideoType
}

// ContentType classifies extracted info as "video", "image" or
// "unknown content".
func ContentType(info mediainfo.Info) string {
	if len(info) == 0 {
		return "unknown"
	}
	if IsVideoContent(info) {
		return "video"
	}

	width, _ := info.Float("width")
	height, _ := info.Float("height")
	if _, hasDuration := info.Duration(); width > 0 && height > 0 && !hasDuration {
		return "image"
	}
	return "unknown content"
}
