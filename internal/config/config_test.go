package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	if s.ListenAddr != ":8000" {
		t.Errorf("listen addr: got %q", s.ListenAddr)
	}
	if s.ThumbnailProvider != "openai" {
		t.Errorf("provider: got %q", s.ThumbnailProvider)
	}
	if s.ExtractionTimeout != 60 || s.RetryAttempts != 3 {
		t.Errorf("yt-dlp defaults: got timeout %d, retries %d",
			s.ExtractionTimeout, s.RetryAttempts)
	}
	if s.MaxURLsPerBatch != 3 || s.MaxConcurrent != 5 {
		t.Errorf("batch defaults: got max %d, concurrent %d",
			s.MaxURLsPerBatch, s.MaxConcurrent)
	}
	if s.MaxRequestsPerMinute != 60 || s.MaxVideoDuration != 300 {
		t.Errorf("limit defaults: got rate %d, duration %d",
			s.MaxRequestsPerMinute, s.MaxVideoDuration)
	}
	if !s.CacheEnabled || s.CacheTTLSeconds != 3600 {
		t.Errorf("cache defaults: got enabled %v, ttl %d",
			s.CacheEnabled, s.CacheTTLSeconds)
	}
	if s.DefaultAnalysisLanguage != "id" {
		t.Errorf("language: got %q", s.DefaultAnalysisLanguage)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("listen_addr: \":9000\"\nmax_urls_per_batch: 10\ncache_enabled: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ListenAddr != ":9000" {
		t.Errorf("listen addr: got %q", s.ListenAddr)
	}
	if s.MaxURLsPerBatch != 10 {
		t.Errorf("max urls: got %d", s.MaxURLsPerBatch)
	}
	if s.CacheEnabled {
		t.Error("cache_enabled override lost")
	}
	if s.ThumbnailProvider != "openai" {
		t.Errorf("unset keys must keep defaults, got %q", s.ThumbnailProvider)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":7000")
	t.Setenv("EXTRACTION_TIMEOUT", "30")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("THUMBNAIL_PROVIDER", " gemini ")

	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ListenAddr != ":7000" {
		t.Errorf("listen addr: got %q", s.ListenAddr)
	}
	if s.ExtractionTimeout != 30 {
		t.Errorf("timeout: got %d", s.ExtractionTimeout)
	}
	if s.CacheEnabled {
		t.Error("cache must be disabled via env")
	}
	if s.ThumbnailProvider != "gemini" {
		t.Errorf("provider must be trimmed, got %q", s.ThumbnailProvider)
	}
}

func TestEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("EXTRACTION_TIMEOUT", "not-a-number")
	t.Setenv("LISTEN_ADDR", "   ")

	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ExtractionTimeout != 60 {
		t.Errorf("invalid int must keep default, got %d", s.ExtractionTimeout)
	}
	if s.ListenAddr != ":8000" {
		t.Errorf("blank string must keep default, got %q", s.ListenAddr)
	}
}
