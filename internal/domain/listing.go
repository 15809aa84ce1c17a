package domain

import "strconv"

// RawListing is one ad card exactly as extracted from a category page.
// Fields may be empty strings when the source markup lacks the element;
// extraction never fails a record over a missing sub-element.
type RawListing struct {
	Type      string `json:"type"`
	PriceText string `json:"prix"`
	Address   string `json:"adresse"`
	ImageURL  string `json:"image_lien"`
}

// Listing is the cleaned record handed to dashboard consumers. A nil field
// means absent: the source had nothing there, or the text normalized to
// empty. Present string fields are never empty.
//
// JSON names follow the export contract (type, prix, prix_brut, adresse,
// image_lien, categorie).
type Listing struct {
	Type     *string `json:"type"`
	PriceRaw *string `json:"prix_brut"`
	Price    *int    `json:"prix"`
	Address  *string `json:"adresse"`
	ImageURL *string `json:"image_lien"`
	Category *string `json:"categorie"`
}

// Key identifies a listing for deduplication. An empty string marks an absent
// field (present cleaned fields are never empty). The price slot prefers the
// raw price text over the parsed integer and tags which one it holds, so a
// raw "25 000 FCFA" and a bare parsed 25000 never collide.
type Key struct {
	Type     string
	Price    string
	Address  string
	ImageURL string
	Category string
}

func (l Listing) Key() Key {
	return Key{
		Type:     deref(l.Type),
		Price:    l.priceKey(),
		Address:  deref(l.Address),
		ImageURL: deref(l.ImageURL),
		Category: deref(l.Category),
	}
}

func (l Listing) priceKey() string {
	switch {
	case l.PriceRaw != nil:
		return "s:" + *l.PriceRaw
	case l.Price != nil:
		return "i:" + strconv.Itoa(*l.Price)
	default:
		return ""
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
