package clean

import (
	"testing"

	"coinafrique-engine/internal/domain"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Dakar   Sénégal  ", "Dakar Sénégal"},
		{"25 000 FCFA", "25 000 FCFA"},
		{"\t Plateau \n Dakar ", "Plateau Dakar"},
		{"", ""},
		{"   ", ""},
		{"déjà propre", "déjà propre"},
	}

	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"25 000 FCFA", 25000, true},
		{"1.500", 1500, true},
		{"3 500 CFA", 3500, true},
		{"0 CFA", 0, true},
		{"Prix sur demande", 0, false},
		{"PRIX SUR DEMANDE", 0, false},
		{"sur demande", 0, false},
		// on-request text wins even when digits are present
		{"2 pièces, prix sur demande", 0, false},
		{"gratuit", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := Price(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Price(%q) = (%d, %v); want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRecords(t *testing.T) {
	raw := []domain.RawListing{
		{Type: " Habits ", PriceText: " 25 000  FCFA ", Address: "  Dakar   Plateau ", ImageURL: "https://img.example/1.jpg"},
		{Type: "habits", PriceText: "", Address: "", ImageURL: ""},
		{Type: "habits", PriceText: "Prix sur demande", Address: "Thies", ImageURL: "https://img.example/2.jpg"},
	}

	got := Records(raw, "vetements-homme")
	if len(got) != len(raw) {
		t.Fatalf("got %d listings; want %d (cleaning is 1:1)", len(got), len(raw))
	}

	first := got[0]
	if first.Type == nil || *first.Type != "habits" {
		t.Errorf("type = %v; want lower-cased habits", first.Type)
	}
	if first.PriceRaw == nil || *first.PriceRaw != "25 000 FCFA" {
		t.Errorf("price_raw = %v; want normalized text", first.PriceRaw)
	}
	if first.Price == nil || *first.Price != 25000 {
		t.Errorf("price = %v; want 25000", first.Price)
	}
	if first.Address == nil || *first.Address != "Dakar Plateau" {
		t.Errorf("address = %v; want collapsed", first.Address)
	}
	if first.Category == nil || *first.Category != "vetements-homme" {
		t.Errorf("category = %v; want stamped", first.Category)
	}

	second := got[1]
	if second.PriceRaw != nil || second.Price != nil || second.Address != nil || second.ImageURL != nil {
		t.Errorf("empty fields should be absent: %+v", second)
	}
	if second.Type == nil {
		t.Error("type should survive")
	}

	third := got[2]
	if third.Price != nil {
		t.Errorf("on-request price = %d; want absent", *third.Price)
	}
	if third.PriceRaw == nil || *third.PriceRaw != "Prix sur demande" {
		t.Errorf("price_raw = %v; want the raw text kept", third.PriceRaw)
	}
}

func TestRowsAliases(t *testing.T) {
	rows := []Row{
		// English aliases
		{"type": "Chaussures", "price_raw": "15 000 CFA", "address": "Dakar", "image_url": "https://img.example/3.jpg", "category": "chaussures-homme"},
		// prix_brut preferred over an already-parsed prix
		{"type": "habits", "prix_brut": "Prix sur demande", "prix": "9999", "adresse": "Thies", "categorie": "vetements-homme"},
		// parsed integer only, no raw text
		{"type": "habits", "prix": "5000", "adresse": "Mbour"},
	}

	got := Rows(rows)
	if len(got) != 3 {
		t.Fatalf("got %d listings; want 3", len(got))
	}

	first := got[0]
	if first.Type == nil || *first.Type != "chaussures" {
		t.Errorf("type = %v; want chaussures", first.Type)
	}
	if first.Price == nil || *first.Price != 15000 {
		t.Errorf("price = %v; want 15000 via english alias", first.Price)
	}
	if first.Category == nil || *first.Category != "chaussures-homme" {
		t.Errorf("category = %v", first.Category)
	}

	second := got[1]
	if second.Price != nil {
		t.Errorf("price = %d; want absent (prix_brut says on request)", *second.Price)
	}

	third := got[2]
	if third.Price == nil || *third.Price != 5000 {
		t.Errorf("price = %v; want 5000 from the prix fallback", third.Price)
	}
}
