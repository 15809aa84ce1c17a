package httpapi

import (
	"net/http"
	"strconv"
	"sync/atomic"

	"coinafrique-engine/internal/report"
)

type ListingsHandler struct {
	Dataset *atomic.Value // []domain.Listing
}

// filterFromQuery maps the dashboard sidebar onto report.Filter:
// ?type=habits&type=chaussures&q=dakar&min_price=1000&max_price=50000&no_price=false
// Price-less listings are included unless no_price=false, matching the
// dashboard default.
func filterFromQuery(r *http.Request) report.Filter {
	q := r.URL.Query()

	f := report.Filter{
		Types:          q["type"],
		AddressQuery:   q.Get("q"),
		IncludeNoPrice: true,
	}
	if v := q.Get("no_price"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.IncludeNoPrice = b
		}
	}
	if v := q.Get("min_price"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinPrice = &n
		}
	}
	if v := q.Get("max_price"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxPrice = &n
		}
	}
	return f
}

func (h ListingsHandler) List(w http.ResponseWriter, r *http.Request) {
	listings := report.Apply(dataset(h.Dataset), filterFromQuery(r))
	writeJSON(w, map[string]any{
		"count":    len(listings),
		"listings": listings,
	})
}

func (h ListingsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	listings := report.Apply(dataset(h.Dataset), filterFromQuery(r))
	writeJSON(w, report.Summarize(listings))
}
