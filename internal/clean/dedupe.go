package clean

import "coinafrique-engine/internal/domain"

// Dedupe removes listings whose five-field key (type, price, address, image,
// category) was already seen, in a single left-to-right pass. The first
// occurrence wins and survivor order is preserved, so deduping is idempotent.
func Dedupe(listings []domain.Listing) []domain.Listing {
	seen := make(map[domain.Key]struct{}, len(listings))
	out := make([]domain.Listing, 0, len(listings))

	for _, l := range listings {
		k := l.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}
	return out
}
