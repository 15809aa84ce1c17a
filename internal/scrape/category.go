package scrape

import (
	"context"
	"fmt"

	"coinafrique-engine/internal/domain"
)

// Scraper drives the page loop for category listings.
type Scraper struct {
	fetcher *Fetcher
}

func New(fetcher *Fetcher) *Scraper {
	return &Scraper{fetcher: fetcher}
}

// Category scrapes pages 1..pages of one category and concatenates the
// results in page order. Page counts below 1 are clamped up to 1. The first
// failed page aborts the whole category; there is no skip-and-continue and no
// per-page retry. The fetcher's limiter paces successive requests.
func (s *Scraper) Category(ctx context.Context, baseURL, itemType string, pages int) ([]domain.RawListing, error) {
	if pages < 1 {
		pages = 1
	}

	var out []domain.RawListing
	for page := 1; page <= pages; page++ {
		html, err := s.fetcher.FetchHTML(ctx, BuildPageURL(baseURL, page))
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		rows, err := ParseListings(html, itemType)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		out = append(out, rows...)
	}
	return out, nil
}
