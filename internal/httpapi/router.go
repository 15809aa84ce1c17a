package httpapi

import "net/http"

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Category registry
	cath := CategoriesHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cath.List,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Cache:       d.Cache,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Scrape
	sch := ScrapeHandler{
		CfgVal:       d.CfgVal,
		ScrapeStatus: d.ScrapeStatus,
		Dataset:      d.Dataset,
		Hub:          d.Hub,
		Cache:        d.Cache,
		RunScrape:    d.RunScrape,
	}
	mux.HandleFunc("/scrape/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sch.Status,
	}))
	mux.HandleFunc("/scrape/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sch.Run,
	}))

	// Listings (current cleaned dataset)
	lh := ListingsHandler{Dataset: d.Dataset}
	mux.HandleFunc("/listings", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.List,
	}))
	mux.HandleFunc("/listings/summary", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.Summary,
	}))

	// CSV in/out
	eh := ExportHandler{Dataset: d.Dataset, Hub: d.Hub}
	mux.HandleFunc("/listings/export", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ExportCSV,
	}))
	mux.HandleFunc("/listings/import", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: eh.ImportCSV,
	}))

	// SSE events
	evh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: evh.ServeSSE,
	}))

	return mux
}
