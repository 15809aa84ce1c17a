package main

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"

	"coinafrique-engine/internal/cache"
	"coinafrique-engine/internal/config"
	"coinafrique-engine/internal/domain"
	"coinafrique-engine/internal/events"
	"coinafrique-engine/internal/httpapi"
	"coinafrique-engine/internal/scrape"
)

func main() {
	// Optional .env overrides (data dir, port) without touching the YAML.
	_ = godotenv.Load()

	dataDir := os.Getenv("COINAFRIQUE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		if err := config.OverlayCategories(&cfg, filepath.Join(dataDir, "categories.yml")); err != nil {
			return cfg, err
		}
		normalized, vr := config.NormalizeAndValidate(cfg)
		for _, warn := range vr.Warnings {
			log.Printf("level=warn msg=\"config\" warn=%q", warn)
		}
		if !vr.OK() {
			return cfg, errors.New("config validation failed:\n- " + strings.Join(vr.Errors, "\n- "))
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	snapshots, err := cache.New(cfg.CacheTTL())
	if err != nil {
		log.Fatalf("cache init failed: %v", err)
	}

	hub := events.NewHub()

	var scrapeStatus atomic.Value
	scrapeStatus.Store(httpapi.ScrapeStatus{})
	var currentDataset atomic.Value
	currentDataset.Store([]domain.Listing(nil))

	mux := httpapi.NewMux(httpapi.Deps{
		Hub:          hub,
		Cache:        snapshots,
		CfgVal:       &cfgVal,
		ScrapeStatus: &scrapeStatus,
		Dataset:      &currentDataset,
		UserCfgPath:  userCfgPath,
		LoadCfg:      loadCfg,
		RunScrape:    scrape.Run,
	})

	port := cfg.App.Port
	if p := os.Getenv("COINAFRIQUE_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}

	// Local engine for a local dashboard; not meant to be exposed.
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (config=%s)", addr, userCfgPath)

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, httpapi.RequestID, httpapi.Recover, httpapi.AccessLog, httpapi.Cors),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
