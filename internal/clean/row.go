package clean

import "coinafrique-engine/internal/domain"

// Row is a loosely-typed record crossing the cleaner boundary, e.g. one line
// of an uploaded raw CSV. Lookups accept both the French export names and
// their English aliases; missing keys behave like empty fields.
type Row map[string]string

var fieldAliases = map[string][]string{
	"type": {"type"},
	// prefer the verbatim price text over an already-parsed integer
	"prix":       {"prix_brut", "price_raw", "prix", "price"},
	"adresse":    {"adresse", "address"},
	"image_lien": {"image_lien", "image_url"},
	"categorie":  {"categorie", "category"},
}

func (r Row) get(field string) string {
	for _, k := range fieldAliases[field] {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Rows cleans loose records 1:1, in order. The category comes from the row
// itself rather than being injected by a scrape run.
func Rows(rows []Row) []domain.Listing {
	out := make([]domain.Listing, 0, len(rows))
	for _, r := range rows {
		out = append(out, one(
			r.get("type"),
			r.get("prix"),
			r.get("adresse"),
			r.get("image_lien"),
			r.get("categorie"),
		))
	}
	return out
}
