// Package report computes the dashboard's view of a cleaned dataset: value
// filters over type/address/price and the headline aggregates behind the
// metric cards and charts.
package report

import (
	"strings"

	"coinafrique-engine/internal/domain"
)

// Filter mirrors the dashboard sidebar. Zero values mean "no constraint",
// except IncludeNoPrice which must be set explicitly to keep price-less
// listings.
type Filter struct {
	Types          []string
	AddressQuery   string
	MinPrice       *int
	MaxPrice       *int
	IncludeNoPrice bool
}

// Apply keeps the listings matching every constraint, preserving order.
// Listings with an absent field fail any constraint on that field: a type
// filter drops untyped listings, an address query drops unlocated ones, and
// price-less listings survive only through IncludeNoPrice.
func Apply(listings []domain.Listing, f Filter) []domain.Listing {
	typeSet := map[string]bool{}
	for _, t := range f.Types {
		typeSet[strings.ToLower(strings.TrimSpace(t))] = true
	}
	query := strings.ToLower(strings.TrimSpace(f.AddressQuery))

	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if len(typeSet) > 0 {
			if l.Type == nil || !typeSet[*l.Type] {
				continue
			}
		}
		if query != "" {
			if l.Address == nil || !strings.Contains(strings.ToLower(*l.Address), query) {
				continue
			}
		}
		if !priceOK(l.Price, f) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func priceOK(p *int, f Filter) bool {
	if p == nil {
		return f.IncludeNoPrice
	}
	if f.MinPrice != nil && *p < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && *p > *f.MaxPrice {
		return false
	}
	return true
}

// Summary holds the dashboard aggregates. Per-type maps bucket untyped
// listings under "inconnu"; averages only cover priced listings.
type Summary struct {
	Total          int            `json:"total"`
	Priced         int            `json:"priced"`
	NoPrice        int            `json:"no_price"`
	AvgPrice       int            `json:"avg_price"`
	MinPrice       int            `json:"min_price"`
	MaxPrice       int            `json:"max_price"`
	AvgPriceByType map[string]int `json:"avg_price_by_type"`
	CountByType    map[string]int `json:"count_by_type"`
}

func Summarize(listings []domain.Listing) Summary {
	s := Summary{
		AvgPriceByType: make(map[string]int),
		CountByType:    make(map[string]int),
	}
	s.Total = len(listings)

	var total int
	sumByType := map[string]int{}
	pricedByType := map[string]int{}

	for _, l := range listings {
		typ := "inconnu"
		if l.Type != nil {
			typ = *l.Type
		}
		s.CountByType[typ]++

		if l.Price == nil {
			s.NoPrice++
			continue
		}
		p := *l.Price
		if s.Priced == 0 || p < s.MinPrice {
			s.MinPrice = p
		}
		if s.Priced == 0 || p > s.MaxPrice {
			s.MaxPrice = p
		}
		s.Priced++
		total += p
		sumByType[typ] += p
		pricedByType[typ]++
	}

	if s.Priced > 0 {
		s.AvgPrice = total / s.Priced
	}
	for typ, sum := range sumByType {
		s.AvgPriceByType[typ] = sum / pricedByType[typ]
	}
	return s
}
