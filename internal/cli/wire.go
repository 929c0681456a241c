package cli

import (
	"context"
	"time"

	"github.com/sorotlabs/sorot/internal/batch"
	"github.com/sorotlabs/sorot/internal/cache"
	"github.com/sorotlabs/sorot/internal/config"
	"github.com/sorotlabs/sorot/internal/extractor"
	"github.com/sorotlabs/sorot/internal/logging"
	"github.com/sorotlabs/sorot/internal/thumbnail"
	"github.com/sorotlabs/sorot/internal/transcript"
	"github.com/sorotlabs/sorot/internal/ytdlp"
)

// builds the extraction pipeline from settings
func buildServices(
	ctx context.Context,
	cfg *config.Settings,
	log *logging.Logger,
) (*extractor.Service, *batch.Processor) {
	source := ytdlp.NewClient(ytdlp.Config{
		BinaryPath:    cfg.YtDlpPath,
		SocketTimeout: cfg.ExtractionTimeout,
		Retries:       cfg.RetryAttempts,
	}, log)
	if err := source.CheckBinary(); err != nil {
		log.Warnw("yt-dlp binary not found, extraction will fail",
			"path", cfg.YtDlpPath,
			"error", err)
	}

	transcripts := transcript.NewService(log, cfg.DefaultAnalysisLanguage)
	analyzer := buildAnalyzer(ctx, cfg, log)

	var store cache.Store
	if cfg.CacheEnabled {
		store = cache.New(cfg.RedisAddr, log)
	}

	svc := extractor.NewService(extractor.Config{
		ScraperAPIKey:     cfg.ScraperAPIKey,
		ScraperAPIBaseURL: cfg.ScraperAPIBaseURL,
		ExtractionTimeout: time.Duration(cfg.ExtractionTimeout) * time.Second,
		CacheEnabled:      cfg.CacheEnabled,
		CacheTTL:          time.Duration(cfg.CacheTTLSeconds) * time.Second,
		EnableThumbnails:  cfg.EnableThumbnailAnalysis,
	}, source, transcripts, analyzer, store, log)

	proc := batch.NewProcessor(svc, cfg.MaxURLsPerBatch, cfg.MaxConcurrent, log)
	return svc, proc
}

// returns nil when thumbnail analysis is disabled or unconfigured
func buildAnalyzer(
	ctx context.Context,
	cfg *config.Settings,
	log *logging.Logger,
) thumbnail.Analyzer {
	if !cfg.EnableThumbnailAnalysis {
		return nil
	}

	provider := thumbnail.Provider(cfg.ThumbnailProvider)
	var apiKey string
	switch provider {
	case thumbnail.ProviderOpenAI:
		apiKey = cfg.OpenAIAPIKey
	case thumbnail.ProviderGemini:
		apiKey = cfg.GeminiAPIKey
	case thumbnail.ProviderAnthropic:
		apiKey = cfg.AnthropicAPIKey
	}

	analyzer, err := thumbnail.Factory(ctx, provider, apiKey, thumbnail.Options{
		Language: cfg.DefaultAnalysisLanguage,
	})
	if err != nil {
		log.Warnw("Thumbnail analysis disabled",
			"provider", cfg.ThumbnailProvider,
			"error", err)
		return nil
	}
	return analyzer
}
