package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVReader reads comma-separated files with a header row. A UTF-8 or UTF-16
// byte order mark is consumed before parsing.
type CSVReader struct{}

func (r *CSVReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	return r.ReadFrom(file)
}

func (r *CSVReader) ReadFrom(input io.Reader) ([]Record, error) {
	return readDelimited(input, ',', "csv")
}

// readDelimited parses a header row followed by data rows. label prefixes errors.
func readDelimited(input io.Reader, comma rune, label string) ([]Record, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(input, decoder))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err == io.EOF {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", label, err)
	}
	normalizedHeaders := normalizeHeaders(headers)

	records := make([]Record, 0, 128)
	rowNumber := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", label, rowNumber+1, err)
		}

		records = append(records, buildRecord(normalizedHeaders, row, rowNumber+1))
		rowNumber++
	}

	return records, nil
}
