package scrape

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"coinafrique-engine/internal/clean"
	"coinafrique-engine/internal/config"
	"coinafrique-engine/internal/domain"
)

// Run scrapes the selected categories, cleans the records, and dedupes the
// combined set. Categories run in parallel, but pages within a category stay
// strictly ordered, all requests share one host limiter, and the first failed
// page cancels the whole run. Output order is deterministic: selection order,
// then page order, then card order.
//
// onCategory, when non-nil, is called after each category finishes with its
// raw listing count (drives UI progress events).
func Run(ctx context.Context, cfg config.Config, keys []string, pages int, onCategory func(key string, count int)) ([]domain.Listing, error) {
	selected := make([]config.Category, 0, len(keys))
	for _, key := range keys {
		cat, ok := cfg.CategoryByKey(key)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", key)
		}
		selected = append(selected, cat)
	}

	limiter := NewHostLimiter(cfg.Delay())
	scraper := New(NewFetcher(cfg.Timeout(), cfg.Scrape.UserAgent, limiter))

	g, gctx := errgroup.WithContext(ctx)
	perCategory := make([][]domain.Listing, len(selected))

	for i, cat := range selected {
		i, cat := i, cat

		g.Go(func() error {
			log.Printf("[scrape:%s] running pages=%d", cat.Key, pages)
			raw, err := scraper.Category(gctx, cat.URL, cat.Type, pages)
			if err != nil {
				return fmt.Errorf("category %s: %w", cat.Key, err)
			}
			perCategory[i] = clean.Records(raw, cat.Key)

			log.Printf("[scrape:%s] got %d listings", cat.Key, len(raw))
			if onCategory != nil {
				onCategory(cat.Key, len(raw))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Listing
	for _, rows := range perCategory {
		all = append(all, rows...)
	}
	return clean.Dedupe(all), nil
}
