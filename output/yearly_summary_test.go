package output

import (
	"testing"

	"worksvis/work"
)

func TestBuildYearSummaries_CountsDistinctValuesPerYear(t *testing.T) {
	rows := []work.Row{
		{WorkID: "W1", AuthorID: "A1", Country: "France", Field: "Medicine", Year: 2020},
		{WorkID: "W1", AuthorID: "A2", Country: "Germany", Field: "medicine", Year: 2020},
		{WorkID: "W2", AuthorID: "A1", Country: "", Field: "['AI', 'ML']", Year: 2020},
		{WorkID: "W3", AuthorID: "A3", Country: "France", Field: "", Year: 2019},
	}

	summaries := BuildYearSummaries(rows)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	first := summaries[0]
	if first.Year != 2019 || first.Rows != 1 || first.Works != 1 || first.Authors != 1 || first.Countries != 1 || first.Fields != 0 {
		t.Fatalf("unexpected 2019 summary: %+v", first)
	}

	second := summaries[1]
	if second.Year != 2020 {
		t.Fatalf("expected second summary for 2020, got %d", second.Year)
	}
	if second.Rows != 3 || second.Works != 2 || second.Authors != 2 {
		t.Fatalf("unexpected 2020 counts: %+v", second)
	}
	if second.Countries != 2 {
		t.Fatalf("expected empty country to be ignored, got %d", second.Countries)
	}
	if second.Fields != 3 {
		t.Fatalf("expected medicine/ai/ml fields, got %d", second.Fields)
	}
}

func TestBuildYearSummaries_Empty(t *testing.T) {
	if got := BuildYearSummaries(nil); len(got) != 0 {
		t.Fatalf("expected no summaries, got %d", len(got))
	}
}
