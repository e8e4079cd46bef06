package web

import (
	"testing"

	"worksvis/work"
)

func TestFieldCounts_CountsEachRowOncePerField(t *testing.T) {
	t.Parallel()

	rows := []work.Row{
		{Field: "AI|ai|ML"},
		{Field: "['ML']"},
		{Field: ""},
	}

	counts := FieldCounts(rows)
	if len(counts) != 2 {
		t.Fatalf("expected 2 fields, got %+v", counts)
	}
	if counts[0].Name != "ML" || counts[0].Rows != 2 {
		t.Fatalf("unexpected top field: %+v", counts[0])
	}
	if counts[1].Name != "AI" || counts[1].Rows != 1 {
		t.Fatalf("unexpected second field: %+v", counts[1])
	}
}

func TestCountryCounts_SkipsEmptyCountries(t *testing.T) {
	t.Parallel()

	rows := []work.Row{{Country: "France"}, {Country: ""}, {Country: "Germany"}, {Country: "France"}}
	counts := CountryCounts(rows)
	if len(counts) != 2 || counts[0].Name != "France" || counts[0].Rows != 2 || counts[1].Name != "Germany" {
		t.Fatalf("unexpected country counts: %+v", counts)
	}
}

func TestFilterRows_CombinesFilters(t *testing.T) {
	t.Parallel()

	year := 2020
	rows := []work.Row{
		{WorkID: "W1", Country: "France", Field: "AI", Year: 2020},
		{WorkID: "W2", Country: "France", Field: "AI", Year: 2019},
		{WorkID: "W3", Country: "Germany", Field: "AI", Year: 2020},
	}

	got := FilterRows(rows, RowFilter{Year: &year, Country: "FRANCE", Field: "ai"})
	if len(got) != 1 || got[0].WorkID != "W1" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	if got := FilterRows(rows, RowFilter{}); len(got) != 3 {
		t.Fatalf("expected empty filter to keep all rows, got %d", len(got))
	}
}

func TestRowsForAuthor(t *testing.T) {
	t.Parallel()

	rows := []work.Row{
		{WorkID: "W1", AuthorID: "https://openalex.org/A1"},
		{WorkID: "W2", AuthorID: "https://openalex.org/A2"},
	}
	if got := RowsForAuthor(rows, "A1"); len(got) != 1 || got[0].WorkID != "W1" {
		t.Fatalf("unexpected short id match: %+v", got)
	}
	if got := RowsForAuthor(rows, "https://openalex.org/A2"); len(got) != 1 || got[0].WorkID != "W2" {
		t.Fatalf("unexpected full id match: %+v", got)
	}
	if got := RowsForAuthor(rows, "https:/openalex.org/A2"); len(got) != 1 || got[0].WorkID != "W2" {
		t.Fatalf("unexpected cleaned id match: %+v", got)
	}
}

func TestFieldCounts_MergesAccentAndCaseVariants(t *testing.T) {
	t.Parallel()

	rows := []work.Row{
		{Field: "Économie"},
		{Field: "économie"},
		{Field: "ÉCONOMIE"},
		{Field: "Économie"},
	}

	counts := FieldCounts(rows)
	if len(counts) != 1 || counts[0].Rows != 4 || counts[0].Name != "Économie" {
		t.Fatalf("expected one merged field, got %+v", counts)
	}

	if got := FilterRows(rows, RowFilter{Field: "économie"}); len(got) != 4 {
		t.Fatalf("expected accent-insensitive filter match, got %d rows", len(got))
	}
}
