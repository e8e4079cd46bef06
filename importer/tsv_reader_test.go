package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func TestTSVReader_DecodesUTF16WithBOM(t *testing.T) {
	t.Parallel()

	content := "work_id\tauthor_id\tcountries\ttopic_field_display_name\tpub_year\n" +
		"W1\tA1\t['GB', 'FR']\tMedicine, Biology\t2020\n" +
		"W2\tA2\t['DE']\tPhysics\t\n"

	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	encoded, err := encoder.String(content)
	if err != nil {
		t.Fatalf("encode utf-16: %v", err)
	}

	path := filepath.Join(t.TempDir(), "works.tsv")
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("write tsv: %v", err)
	}

	result, err := Run([]string{path}, "", NewWorksMapper(Columns{}, nil))
	if err != nil {
		t.Fatalf("run tsv import: %v", err)
	}
	if result.RowsRead != 2 || result.RowsMapped != 1 {
		t.Fatalf("unexpected counts: read=%d mapped=%d", result.RowsRead, result.RowsMapped)
	}

	row := result.Rows[0]
	if row.WorkID != "W1" || row.Country != "United Kingdom" || row.Field != "Medicine, Biology" || row.Year != 2020 {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestTSVReader_KeepsCommasInsideCells(t *testing.T) {
	t.Parallel()

	input := "work_id\ttopic_field_display_name\nW1\tAI,ML\n"
	records, err := (&TSVReader{}).ReadFrom(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read tsv: %v", err)
	}
	if len(records) != 1 || records[0].Get("topic_field_display_name") != "AI,ML" {
		t.Fatalf("unexpected records: %+v", records)
	}
}
