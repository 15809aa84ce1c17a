// Package export serializes cleaned listings for download and reads raw
// listing CSVs back in. The header is a stable contract with external
// consumers; do not reorder it.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"coinafrique-engine/internal/clean"
	"coinafrique-engine/internal/domain"
)

var header = []string{"type", "prix", "prix_brut", "adresse", "image_lien", "categorie"}

// WriteCSV writes the listings as UTF-8 CSV with the contract header. Absent
// fields serialize as empty cells.
func WriteCSV(w io.Writer, listings []domain.Listing) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, l := range listings {
		row := []string{
			str(l.Type),
			price(l.Price),
			str(l.PriceRaw),
			str(l.Address),
			str(l.ImageURL),
			str(l.Category),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadRows reads a CSV of raw listing records into loose rows keyed by the
// file's own header, ready for the cleaner. Header names may use either the
// French contract names or their English aliases; short data rows leave the
// trailing fields unset.
func ReadRows(r io.Reader) ([]clean.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols := records[0]
	rows := make([]clean.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(clean.Row, len(cols))
		for i, name := range cols {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func price(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
