package httpapi

import (
	"sync/atomic"

	"coinafrique-engine/internal/domain"
)

type ScrapeStatus struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastCount int    `json:"last_count"`
	FromCache bool   `json:"from_cache"`
	Running   bool   `json:"running"`
}

// dataset reads the current cleaned listings out of the atomic store.
func dataset(v *atomic.Value) []domain.Listing {
	if l, ok := v.Load().([]domain.Listing); ok {
		return l
	}
	return nil
}
