// Package cache memoizes full scrape results so identical repeated requests
// (same category set, same page count) skip the network entirely. Entries
// expire on a TTL; a new parameter combination simply misses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"

	"coinafrique-engine/internal/domain"
)

type Snapshots struct {
	bc *bigcache.BigCache
}

func New(ttl time.Duration) (*Snapshots, error) {
	bc, err := bigcache.New(context.Background(), bigcache.DefaultConfig(ttl))
	if err != nil {
		return nil, err
	}
	return &Snapshots{bc: bc}, nil
}

// Key canonicalizes scrape parameters: category order does not matter, page
// count does.
func Key(categories []string, pages int) string {
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Strings(sorted)
	return strings.Join(sorted, ",") + "|pages=" + strconv.Itoa(pages)
}

func (s *Snapshots) Get(categories []string, pages int) ([]domain.Listing, bool) {
	b, err := s.bc.Get(Key(categories, pages))
	if err != nil {
		return nil, false
	}
	var listings []domain.Listing
	if err := json.Unmarshal(b, &listings); err != nil {
		return nil, false
	}
	return listings, true
}

func (s *Snapshots) Put(categories []string, pages int, listings []domain.Listing) error {
	b, err := json.Marshal(listings)
	if err != nil {
		return err
	}
	return s.bc.Set(Key(categories, pages), b)
}

// Reset drops every snapshot (used when the category registry changes).
func (s *Snapshots) Reset() error {
	if s == nil || s.bc == nil {
		return errors.New("cache not initialized")
	}
	return s.bc.Reset()
}
