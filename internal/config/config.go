package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// application settings, populated from defaults, an optional YAML file,
// and environment variables (highest precedence)
type Settings struct {
	ListenAddr string `yaml:"listen_addr"`
	DebugMode  bool   `yaml:"debug_mode"`

	APIKey string `yaml:"api_key"`

	OpenAIAPIKey      string `yaml:"openai_api_key"`
	GeminiAPIKey      string `yaml:"gemini_api_key"`
	AnthropicAPIKey   string `yaml:"anthropic_api_key"`
	ThumbnailProvider string `yaml:"thumbnail_provider"`

	ScraperAPIKey     string `yaml:"scraperapi_key"`
	ScraperAPIBaseURL string `yaml:"scraperapi_base_url"`

	YtDlpPath            string `yaml:"yt_dlp_path"`
	ExtractionTimeout    int    `yaml:"extraction_timeout"`
	RetryAttempts        int    `yaml:"retry_attempts"`
	MaxConcurrent        int    `yaml:"max_concurrent_extractions"`
	MaxURLsPerBatch      int    `yaml:"max_urls_per_batch"`
	MaxRequestsPerMinute int    `yaml:"max_requests_per_minute"`
	MaxVideoDuration     int    `yaml:"max_video_duration"`

	CacheEnabled    bool   `yaml:"cache_enabled"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	RedisAddr       string `yaml:"redis_addr"`

	DefaultAnalysisLanguage string `yaml:"default_analysis_language"`
	EnableThumbnailAnalysis bool   `yaml:"enable_thumbnail_analysis"`
}

// returns settings with documented defaults applied
func Defaults() *Settings {
	return &Settings{
		ListenAddr:              ":8000",
		ThumbnailProvider:       "openai",
		ScraperAPIBaseURL:       "http://api.scraperapi.com/",
		YtDlpPath:               "yt-dlp",
		ExtractionTimeout:       60,
		RetryAttempts:           3,
		MaxConcurrent:           5,
		MaxURLsPerBatch:         3,
		MaxRequestsPerMinute:    60,
		MaxVideoDuration:        300,
		CacheEnabled:            true,
		CacheTTLSeconds:         3600,
		DefaultAnalysisLanguage: "id",
		EnableThumbnailAnalysis: true,
	}
}

// loads settings from an optional YAML file path plus environment overrides
func Load(path string) (*Settings, error) {
	s := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	s.applyEnv()
	return s, nil
}

func (s *Settings) applyEnv() {
	setString(&s.ListenAddr, "LISTEN_ADDR")
	setBool(&s.DebugMode, "DEBUG_MODE")
	setString(&s.APIKey, "API_KEY")
	setString(&s.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&s.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&s.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setString(&s.ThumbnailProvider, "THUMBNAIL_PROVIDER")
	setString(&s.ScraperAPIKey, "SCRAPERAPI_KEY")
	setString(&s.ScraperAPIBaseURL, "SCRAPERAPI_BASE_URL")
	setString(&s.YtDlpPath, "YT_DLP_PATH")
	setInt(&s.ExtractionTimeout, "EXTRACTION_TIMEOUT")
	setInt(&s.RetryAttempts, "RETRY_ATTEMPTS")
	setInt(&s.MaxConcurrent, "MAX_CONCURRENT_EXTRACTIONS")
	setInt(&s.MaxURLsPerBatch, "MAX_URLS_PER_BATCH")
	setInt(&s.MaxRequestsPerMinute, "MAX_REQUESTS_PER_MINUTE")
	setInt(&s.MaxVideoDuration, "MAX_VIDEO_DURATION")
	setBool(&s.CacheEnabled, "CACHE_ENABLED")
	setInt(&s.CacheTTLSeconds, "CACHE_TTL_SECONDS")
	setString(&s.RedisAddr, "REDIS_ADDR")
	setString(&s.DefaultAnalysisLanguage, "DEFAULT_ANALYSIS_LANGUAGE")
	setBool(&s.EnableThumbnailAnalysis, "ENABLE_THUMBNAIL_ANALYSIS")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = strings.EqualFold(strings.TrimSpace(v), "true")
	}
}
