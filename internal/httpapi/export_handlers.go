package httpapi

import (
	"io"
	"mime"
	"net/http"
	"sync/atomic"

	"coinafrique-engine/internal/clean"
	"coinafrique-engine/internal/events"
	"coinafrique-engine/internal/export"
	"coinafrique-engine/internal/report"
)

type ExportHandler struct {
	Dataset *atomic.Value // []domain.Listing
	Hub     *events.Hub
}

// ExportCSV downloads the current dataset (after the same query filters as
// /listings) as UTF-8 CSV.
func (h ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	listings := report.Apply(dataset(h.Dataset), filterFromQuery(r))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="coinafrique_clean.csv"`)
	if err := export.WriteCSV(w, listings); err != nil {
		// headers are gone by now; log-only would lose the signal, so best
		// effort plain error for curl users
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ImportCSV accepts a raw listings CSV (multipart "file" field or plain
// request body), cleans and dedupes it, and makes it the current dataset.
func (h ExportHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	body, err := importBody(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_upload", err.Error())
		return
	}
	defer body.Close()

	rows, err := export.ReadRows(body)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_csv", err.Error())
		return
	}

	listings := clean.Dedupe(clean.Rows(rows))
	h.Dataset.Store(listings)

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, "dataset_replaced", 1, map[string]any{"count": len(listings), "imported": true}))

	writeJSON(w, map[string]any{
		"ok":       true,
		"rows":     len(rows),
		"listings": len(listings),
	})
}

func importBody(r *http.Request) (io.ReadCloser, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return r.Body, nil
}
