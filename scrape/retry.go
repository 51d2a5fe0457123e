package scrape

import (
	"context"
	"time"
)

// FetchFunc fetches the page at url and returns its HTML.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives progress messages from the scraper.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays between fetch attempts.
// Lineup pages update close to kickoff and sources occasionally stall, so
// each source URL gets up to four attempts before it is reported as failed.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches a URL, retrying after each delay in delays
// until one attempt succeeds or the delays run out. The logger, if provided,
// is called before each retry. Tests pass short delays to avoid real waits.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= len(delays) {
			return "", lastErr
		}

		// Don't sleep on a dead context.
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}
