package clean

import (
	"regexp"
	"strconv"
	"strings"

	"coinafrique-engine/internal/domain"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// CleanText collapses whitespace runs (including non-breaking spaces) to
// single spaces and trims the ends.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Price parses free-text price into a non-negative integer amount.
//
// "On request" listings ("prix sur demande" / "sur demande", case
// insensitive) have no price even when digits appear in the text. Otherwise
// every non-digit rune is stripped and the remaining digits concatenated:
// "25 000 FCFA" parses to 25000, and "1.500" to 1500 (separators are lost;
// the raw text is kept on the record for that reason). Text with no digits
// has no price. The second return is false when no price could be parsed.
func Price(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "prix sur demande") || strings.Contains(lowered, "sur demande") {
		return 0, false
	}
	digits := nonDigitRe.ReplaceAllString(text, "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Records cleans raw listings 1:1, in order, stamping each record with its
// source category key. Cleaning never drops or adds records.
func Records(raw []domain.RawListing, category string) []domain.Listing {
	out := make([]domain.Listing, 0, len(raw))
	for _, r := range raw {
		out = append(out, one(r.Type, r.PriceText, r.Address, r.ImageURL, category))
	}
	return out
}

func one(typ, priceText, address, imageURL, category string) domain.Listing {
	rawPrice := CleanText(priceText)

	l := domain.Listing{
		Type:     opt(strings.ToLower(CleanText(typ))),
		PriceRaw: opt(rawPrice),
		Address:  opt(CleanText(address)),
		ImageURL: opt(CleanText(imageURL)),
		Category: opt(CleanText(category)),
	}
	if n, ok := Price(rawPrice); ok {
		l.Price = &n
	}
	return l
}

// opt maps a normalized field to present/absent: empty string is absent.
func opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
