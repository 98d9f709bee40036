package evaluate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV renders the table with one row per document and one column
// per extractor, cell format "valid/complete". The trailing column
// names the extractor arbitration would select.
func (t *Table) WriteCSV(w io.Writer) error {
	out := csv.NewWriter(w)

	header := append([]string{"File"}, t.Extractors...)
	header = append(header, "Winner")
	if err := out.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range t.Rows {
		record := []string{row.Document}
		for _, name := range t.Extractors {
			cell, ok := row.Cells[name]
			if !ok {
				record = append(record, "-")
				continue
			}
			record = append(record, strconv.Itoa(cell.Valid)+"/"+strconv.Itoa(cell.CompleteTimestamps))
		}
		record = append(record, row.Winner)
		if err := out.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	out.Flush()
	return out.Error()
}

// TotalValid sums valid-record counts per extractor across the corpus.
func (t *Table) TotalValid() map[string]int {
	totals := make(map[string]int, len(t.Extractors))
	for _, row := range t.Rows {
		for name, cell := range row.Cells {
			totals[name] += cell.Valid
		}
	}
	return totals
}
