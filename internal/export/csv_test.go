package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"

	"coinafrique-engine/internal/clean"
	"coinafrique-engine/internal/domain"
)

func sp(s string) *string { return &s }
func ip(n int) *int { return &n }

func TestWriteCSVHeaderContract(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := []string{"type", "prix", "prix_brut", "adresse", "image_lien", "categorie"}
	if len(records) != 1 || !reflect.DeepEqual(records[0], want) {
		t.Errorf("header = %v; want %v", records, want)
	}
}

func TestWriteCSVRows(t *testing.T) {
	listings := []domain.Listing{
		{
			Type:     sp("habits"),
			PriceRaw: sp("25 000 FCFA"),
			Price:    ip(25000),
			Address:  sp("Dakar Plateau"),
			ImageURL: sp("https://img.example/1.jpg"),
			Category: sp("vetements-homme"),
		},
		{Type: sp("chaussures")}, // everything else absent
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, listings); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d csv records; want header + 2 rows", len(records))
	}

	if want := []string{"habits", "25000", "25 000 FCFA", "Dakar Plateau", "https://img.example/1.jpg", "vetements-homme"}; !reflect.DeepEqual(records[1], want) {
		t.Errorf("row 1 = %v; want %v", records[1], want)
	}
	if want := []string{"chaussures", "", "", "", "", ""}; !reflect.DeepEqual(records[2], want) {
		t.Errorf("row 2 = %v; want absent fields as empty cells", records[2])
	}
}

// Export then re-import through the cleaner: every field survives the trip.
func TestCSVRoundTrip(t *testing.T) {
	listings := []domain.Listing{
		{
			Type:     sp("habits"),
			PriceRaw: sp("25 000 FCFA"),
			Price:    ip(25000),
			Address:  sp("Dakar Plateau"),
			ImageURL: sp("https://img.example/1.jpg"),
			Category: sp("vetements-homme"),
		},
		{
			Type:     sp("chaussures"),
			PriceRaw: sp("Prix sur demande"),
			Address:  sp("Thies"),
			Category: sp("chaussures-homme"),
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, listings); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := ReadRows(&buf)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	got := clean.Rows(rows)

	if !reflect.DeepEqual(got, listings) {
		t.Errorf("round trip changed the data:\n got %+v\nwant %+v", got, listings)
	}
}

func TestReadRowsShortAndAliasedRows(t *testing.T) {
	in := "type,price_raw,address\nhabits,15 000 CFA,Dakar\nchaussures\n"

	rows, err := ReadRows(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows; want 2", len(rows))
	}
	if rows[0]["price_raw"] != "15 000 CFA" || rows[0]["address"] != "Dakar" {
		t.Errorf("row 0 = %v", rows[0])
	}
	// short row leaves trailing columns unset
	if _, ok := rows[1]["price_raw"]; ok {
		t.Errorf("short row should not have price_raw: %v", rows[1])
	}
}

func TestReadRowsEmpty(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows; want 0", len(rows))
	}
}
