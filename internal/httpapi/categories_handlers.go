package httpapi

import (
	"net/http"
	"sync/atomic"

	"coinafrique-engine/internal/config"
)

type CategoriesHandler struct {
	CfgVal *atomic.Value // config.Config
}

// List exposes the category registry so the UI can build its multiselect.
func (h CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	writeJSON(w, cfg.Categories)
}
