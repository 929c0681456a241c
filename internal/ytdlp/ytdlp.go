package ytdlp

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/sorotlabs/sorot/internal/logging"
	"github.com/sorotlabs/sorot/internal/mediainfo"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config holds the invocation options for the yt-dlp binary.
type Config struct {
	BinaryPath    string
	SocketTimeout int
	Retries       int
	UserAgent     string
}

func DefaultConfig() Config {
	return Config{
		BinaryPath:    "yt-dlp",
		SocketTimeout: 60,
		Retries:       3,
		UserAgent:     defaultUserAgent,
	}
}

// Client shells out to yt-dlp for metadata-only extraction.
type Client struct {
	cfg Config
	log *logging.Logger
}

func NewClient(cfg Config, log *logging.Logger) *Client {
	if cfg.BinaryPath == "" {
		cfg.BinaryPath = "yt-dlp"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{cfg: cfg, log: log}
}

// CheckBinary verifies the configured yt-dlp binary is resolvable.
func (c *Client) CheckBinary() error {
	if _, err := exec.LookPath(c.cfg.BinaryPath); err != nil {
		return fmt.Errorf("yt-dlp binary not found at %q: %w", c.cfg.BinaryPath, err)
	}
	return nil
}

// buildArgs assembles the flag set for a metadata dump. No media is ever
// downloaded; subtitles and automatic captions ride along inside the info
// JSON.
func (c *Client) buildArgs(url string) []string {
	args := []string{
		"-j",
		"--skip-download",
		"--quiet",
		"--no-warnings",
		"--no-progress",
		"--no-check-certificates",
		"--ignore-errors",
		"--format", "best",
		"--socket-timeout", strconv.Itoa(c.cfg.SocketTimeout),
		"--retries", strconv.Itoa(c.cfg.Retries),
		"--user-agent", c.cfg.UserAgent,
	}
	return append(args, url)
}

// Extract runs yt-dlp against the URL and returns the parsed info object.
// Cancellation and deadline come from ctx; yt-dlp is killed when it fires.
func (c *Client) Extract(ctx context.Context, url string) (mediainfo.Info, error) {
	started := time.Now()

	cmd := exec.CommandContext(ctx, c.cfg.BinaryPath, c.buildArgs(url)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("yt-dlp timed out: %w", ctx.Err())
		}
		return nil, fmt.Errorf("yt-dlp failed: %w, output: %s", err, truncate(string(out), 500))
	}

	jsonLine, warnings := extractJSONLine(string(out))
	for _, warning := range warnings {
		c.log.Warnw("yt-dlp warning", "url", url, "message", warning)
	}
	if jsonLine == "" {
		return nil, fmt.Errorf("no JSON found in yt-dlp output: %s", truncate(string(out), 500))
	}

	info, err := mediainfo.Parse([]byte(jsonLine))
	if err != nil {
		return nil, err
	}

	c.log.Infow("Extracted video metadata",
		"url", url,
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return info, nil
}

// extractJSONLine splits mixed yt-dlp output into the metadata JSON line and
// any diagnostic lines around it. With multiple JSON lines the last one wins.
func extractJSONLine(output string) (jsonLine string, warnings []string) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			jsonLine = line
		} else {
			warnings = append(warnings, line)
		}
	}
	return jsonLine, warnings
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
