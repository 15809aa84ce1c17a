package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"coinafrique-engine/internal/domain"
)

// Ad-card structure of the source category pages.
const (
	cardSelector     = "div.card.ad__card"
	priceSelector    = "p.ad__card-price a"
	locationSelector = "p.ad__card-location span"
	imageSelector    = "img.ad__card-img"
)

// ParseListings extracts the ad cards from one category page, in document
// order, stamping itemType onto each record. Every matched card yields a
// record: a missing price/location/image element (or src attribute) just
// leaves that field empty. Zero cards is a valid empty result, not an error.
func ParseListings(html string, itemType string) ([]domain.RawListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse listings html: %w", err)
	}

	var out []domain.RawListing
	doc.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
		imageURL, _ := card.Find(imageSelector).First().Attr("src")
		out = append(out, domain.RawListing{
			Type:      itemType,
			PriceText: strings.TrimSpace(card.Find(priceSelector).First().Text()),
			Address:   strings.TrimSpace(card.Find(locationSelector).First().Text()),
			ImageURL:  imageURL,
		})
	})
	return out, nil
}
