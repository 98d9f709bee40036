package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// sampleLines is how much of the document the delimiter sniff looks at.
const sampleLines = 5

// DetectDelimiter decides between comma and tab by counting occurrences
// across the first few lines of the sample. Ties resolve to comma.
func DetectDelimiter(sample string) rune {
	lines := strings.Split(sample, "\n")
	if len(lines) > sampleLines {
		lines = lines[:sampleLines]
	}

	var commas, tabs int
	for _, line := range lines {
		commas += strings.Count(line, ",")
		tabs += strings.Count(line, "\t")
	}

	if tabs > commas {
		return '\t'
	}
	return ','
}

// Parse reads CSV or TSV content, auto-detecting the delimiter, and
// returns one raw field map per data row keyed by the header row.
// Values pass through unmodified; normalization belongs to later
// stages. A header with zero data rows is a valid empty result.
func Parse(content string) ([]map[string]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = DetectDelimiter(content)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	rows := make([]map[string]string, 0)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip it, keep the rest of the table.
			continue
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(fields) {
				row[name] = fields[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
