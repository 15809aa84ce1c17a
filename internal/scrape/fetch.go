package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher issues paced GETs against the source site. The User-Agent is a
// realistic browser string; trivially bot-blocked sites reject Go's default
// one.
type Fetcher struct {
	hc        *http.Client
	userAgent string
	limiter   *HostLimiter
}

func NewFetcher(timeout time.Duration, userAgent string, limiter *HostLimiter) *Fetcher {
	return &Fetcher{
		hc:        &http.Client{Timeout: timeout},
		userAgent: userAgent,
		limiter:   limiter,
	}
}

// FetchHTML GETs one page and returns the body as text. Non-2xx statuses and
// transport failures are hard errors; callers do not retry.
func (f *Fetcher) FetchHTML(ctx context.Context, rawURL string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, rawURL); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	res, err := f.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: status %d", rawURL, res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}
	return string(b), nil
}
