package httpapi

import (
	"context"
	"sync/atomic"

	"coinafrique-engine/internal/cache"
	"coinafrique-engine/internal/config"
	"coinafrique-engine/internal/domain"
	"coinafrique-engine/internal/events"
)

type Deps struct {
	Hub   *events.Hub
	Cache *cache.Snapshots

	// Atomic stores
	CfgVal       *atomic.Value // stores config.Config
	ScrapeStatus *atomic.Value // stores httpapi.ScrapeStatus
	Dataset      *atomic.Value // stores []domain.Listing (current cleaned dataset)

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Scrape entrypoint (inject for testability)
	RunScrape func(ctx context.Context, cfg config.Config, keys []string, pages int, onCategory func(key string, count int)) ([]domain.Listing, error)
}
