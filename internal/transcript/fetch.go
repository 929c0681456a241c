package transcript

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/sorotlabs/sorot/internal/logging"
	"github.com/sorotlabs/sorot/internal/mediainfo"
)

// one slow subtitle host must not stall the whole extraction
const fetchTimeout = 30 * time.Second

type fetcher struct {
	client *http.Client
	log    *logging.Logger
}

func newFetcher(log *logging.Logger) *fetcher {
	return &fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// content resolves the raw payload for a track record. Inline data wins;
// otherwise the record's URL is fetched. Every failure mode (missing URL,
// network error, timeout, non-200 status) is soft: the empty string is
// returned and the caller moves on to the next candidate.
func (f *fetcher) content(ctx context.Context, track mediainfo.Track) string {
	if track.Data != "" {
		return track.Data
	}
	if track.URL == "" {
		return ""
	}
	return f.download(ctx, track.URL)
}

func (f *fetcher) download(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.log.Warnw("Invalid subtitle URL", "url", url, "error", err)
		return ""
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warnw("Error downloading subtitle", "url", url, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.Warnw("Failed to download subtitle", "url", url, "status", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.log.Warnw("Error reading subtitle body", "url", url, "error", err)
		return ""
	}

	return string(body)
}
