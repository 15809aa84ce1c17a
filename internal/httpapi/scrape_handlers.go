package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"coinafrique-engine/internal/cache"
	"coinafrique-engine/internal/config"
	"coinafrique-engine/internal/domain"
	"coinafrique-engine/internal/events"
)

type ScrapeHandler struct {
	CfgVal       *atomic.Value // config.Config
	ScrapeStatus *atomic.Value // httpapi.ScrapeStatus
	Dataset      *atomic.Value // []domain.Listing
	Hub          *events.Hub
	Cache        *cache.Snapshots
	RunScrape    func(ctx context.Context, cfg config.Config, keys []string, pages int, onCategory func(key string, count int)) ([]domain.Listing, error)
}

type scrapeRunRequest struct {
	Categories []string `json:"categories"`
	Pages      int      `json:"pages"`
}

func (h ScrapeHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.ScrapeStatus.Load().(ScrapeStatus)
	writeJSON(w, st)
}

func (h ScrapeHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req scrapeRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	if req.Pages <= 0 {
		req.Pages = cfg.Scrape.Pages
	}
	if len(req.Categories) == 0 {
		WriteError(w, r, http.StatusBadRequest, "no_categories", "select at least one category")
		return
	}
	for _, key := range req.Categories {
		if _, ok := cfg.CategoryByKey(key); !ok {
			WriteError(w, r, http.StatusBadRequest, "unknown_category", "unknown category: "+key)
			return
		}
	}

	// Identical repeated requests come straight out of the snapshot cache; no
	// network, no status churn.
	if listings, ok := h.Cache.Get(req.Categories, req.Pages); ok {
		h.Dataset.Store(listings)
		st := h.ScrapeStatus.Load().(ScrapeStatus)
		st.LastCount = len(listings)
		st.FromCache = true
		h.ScrapeStatus.Store(st)

		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, "dataset_replaced", 1, map[string]any{"count": len(listings), "cached": true}))
		writeJSON(w, map[string]any{"ok": true, "cached": true, "count": len(listings)})
		return
	}

	st := h.ScrapeStatus.Load().(ScrapeStatus)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.ScrapeStatus.Store(ScrapeStatus{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastOkAt:  st.LastOkAt,
	})

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, "scrape_started", 1, map[string]any{
		"categories": req.Categories, "pages": req.Pages,
	}))

	go func() {
		listings, err := h.RunScrape(context.Background(), cfg, req.Categories, req.Pages, func(key string, count int) {
			h.Hub.Publish(events.MakeEvent(reqID, "category_scraped", 1, map[string]any{
				"category": key, "count": count,
			}))
		})

		now := time.Now().Format(time.RFC3339)
		next := h.ScrapeStatus.Load().(ScrapeStatus)
		next.Running = false
		next.LastRunAt = now
		next.FromCache = false
		if err != nil {
			next.LastError = err.Error()
			h.ScrapeStatus.Store(next)
			h.Hub.Publish(events.MakeEvent(reqID, "scrape_finished", 1, map[string]any{"error": err.Error()}))
			return
		}

		next.LastError = ""
		next.LastOkAt = now
		next.LastCount = len(listings)
		h.ScrapeStatus.Store(next)

		h.Dataset.Store(listings)
		if cerr := h.Cache.Put(req.Categories, req.Pages, listings); cerr != nil {
			// cache misses are cheap; a failed put only costs a re-scrape
			h.Hub.Publish(events.MakeEvent(reqID, "scrape_finished", 1, map[string]any{"count": len(listings), "cache_error": cerr.Error()}))
		} else {
			h.Hub.Publish(events.MakeEvent(reqID, "scrape_finished", 1, map[string]any{"count": len(listings)}))
		}
		h.Hub.Publish(events.MakeEvent(reqID, "dataset_replaced", 1, map[string]any{"count": len(listings)}))
	}()

	writeJSON(w, map[string]any{"ok": true, "started": true})
}
