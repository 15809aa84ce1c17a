package report

import (
	"testing"

	"coinafrique-engine/internal/domain"
)

func str(s string) *string { return &s }
func num(n int) *int { return &n }

func sample() []domain.Listing {
	return []domain.Listing{
		{Type: str("habits"), Price: num(25000), Address: str("Dakar Plateau"), Category: str("vetements-homme")},
		{Type: str("habits"), Address: str("Thies"), Category: str("vetements-homme")}, // no price
		{Type: str("chaussures"), Price: num(15000), Address: str("Dakar Medina"), Category: str("chaussures-homme")},
		{Type: str("chaussures"), Price: num(5000), Address: str("Mbour"), Category: str("chaussures-homme")},
		{Price: num(1000), Address: str("Dakar")}, // untyped
	}
}

func TestApplyTypeFilter(t *testing.T) {
	got := Apply(sample(), Filter{Types: []string{"Habits"}, IncludeNoPrice: true})
	if len(got) != 2 {
		t.Fatalf("got %d listings; want 2", len(got))
	}
	for _, l := range got {
		if l.Type == nil || *l.Type != "habits" {
			t.Errorf("leaked listing %+v", l)
		}
	}

	// untyped listing fails any type constraint
	got = Apply(sample(), Filter{Types: []string{"habits", "chaussures"}, IncludeNoPrice: true})
	if len(got) != 4 {
		t.Errorf("got %d listings; want 4 (untyped excluded)", len(got))
	}
}

func TestApplyAddressQuery(t *testing.T) {
	got := Apply(sample(), Filter{AddressQuery: "  DAKAR ", IncludeNoPrice: true})
	if len(got) != 3 {
		t.Errorf("got %d listings; want 3 case-insensitive substring matches", len(got))
	}
}

func TestApplyPriceBounds(t *testing.T) {
	got := Apply(sample(), Filter{MinPrice: num(5000), MaxPrice: num(15000), IncludeNoPrice: false})
	if len(got) != 2 {
		t.Fatalf("got %d listings; want 2 in [5000,15000]", len(got))
	}
	for _, l := range got {
		if l.Price == nil || *l.Price < 5000 || *l.Price > 15000 {
			t.Errorf("out-of-bounds listing %+v", l)
		}
	}
}

func TestApplyNoPriceToggle(t *testing.T) {
	if got := Apply(sample(), Filter{IncludeNoPrice: true}); len(got) != 5 {
		t.Errorf("got %d; want all 5 kept", len(got))
	}
	got := Apply(sample(), Filter{IncludeNoPrice: false})
	if len(got) != 4 {
		t.Errorf("got %d; want 4 (price-less dropped)", len(got))
	}
	for _, l := range got {
		if l.Price == nil {
			t.Errorf("price-less listing survived: %+v", l)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sample())

	if s.Total != 5 || s.Priced != 4 || s.NoPrice != 1 {
		t.Errorf("counts = %d/%d/%d; want 5/4/1", s.Total, s.Priced, s.NoPrice)
	}
	if s.MinPrice != 1000 || s.MaxPrice != 25000 {
		t.Errorf("min/max = %d/%d; want 1000/25000", s.MinPrice, s.MaxPrice)
	}
	if want := (25000 + 15000 + 5000 + 1000) / 4; s.AvgPrice != want {
		t.Errorf("avg = %d; want %d", s.AvgPrice, want)
	}

	if s.CountByType["habits"] != 2 || s.CountByType["chaussures"] != 2 || s.CountByType["inconnu"] != 1 {
		t.Errorf("count_by_type = %v", s.CountByType)
	}
	if s.AvgPriceByType["chaussures"] != 10000 {
		t.Errorf("avg chaussures = %d; want 10000", s.AvgPriceByType["chaussures"])
	}
	if s.AvgPriceByType["habits"] != 25000 {
		t.Errorf("avg habits = %d; want 25000 (only priced listings count)", s.AvgPriceByType["habits"])
	}
	if s.AvgPriceByType["inconnu"] != 1000 {
		t.Errorf("avg inconnu = %d; want 1000", s.AvgPriceByType["inconnu"])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.AvgPrice != 0 || s.MinPrice != 0 || s.MaxPrice != 0 {
		t.Errorf("empty summary not zero: %+v", s)
	}
	if len(s.CountByType) != 0 {
		t.Errorf("count_by_type = %v; want empty", s.CountByType)
	}
}
