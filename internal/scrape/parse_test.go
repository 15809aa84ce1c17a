package scrape

import "testing"

const samplePage = `
<html><body>
<div class="card ad__card">
  <p class="ad__card-price"><a>  25 000  CFA </a></p>
  <p class="ad__card-location"><span> Dakar,   Plateau </span></p>
  <img class="ad__card-img" src="https://img.example/1.jpg">
</div>
<div class="card ad__card">
  <p class="ad__card-location"><span>Thies</span></p>
  <img class="ad__card-img">
</div>
<div class="card">
  <p class="ad__card-price"><a>999</a></p>
</div>
<div class="card ad__card">
  <p class="ad__card-price"><a>10 000 CFA</a></p>
</div>
</body></html>`

func TestParseListings(t *testing.T) {
	rows, err := ParseListings(samplePage, "habits")
	if err != nil {
		t.Fatalf("ParseListings: %v", err)
	}

	// The bare "card" div carries only one marker class and must not match.
	if len(rows) != 3 {
		t.Fatalf("got %d records; want 3", len(rows))
	}

	first := rows[0]
	if first.Type != "habits" {
		t.Errorf("type = %q; want habits", first.Type)
	}
	if first.PriceText != "25 000  CFA" {
		t.Errorf("price text = %q; want ends trimmed only", first.PriceText)
	}
	if first.Address != "Dakar,   Plateau" {
		t.Errorf("address = %q; want ends trimmed only", first.Address)
	}
	if first.ImageURL != "https://img.example/1.jpg" {
		t.Errorf("image = %q", first.ImageURL)
	}

	// Missing price element and missing src attribute yield empty strings,
	// never a dropped record.
	second := rows[1]
	if second.PriceText != "" || second.ImageURL != "" {
		t.Errorf("missing elements should be empty: price=%q image=%q", second.PriceText, second.ImageURL)
	}
	if second.Address != "Thies" {
		t.Errorf("address = %q; want Thies", second.Address)
	}

	// Document order.
	if rows[2].PriceText != "10 000 CFA" {
		t.Errorf("third record out of order: %q", rows[2].PriceText)
	}
}

func TestParseListingsNoCards(t *testing.T) {
	rows, err := ParseListings("<html><body><p>rien ici</p></body></html>", "habits")
	if err != nil {
		t.Fatalf("ParseListings: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d records; want 0", len(rows))
	}
}
