package output

import (
	"fmt"
	"strings"

	"worksvis/importer"
	"worksvis/loader"
	"worksvis/work"
)

type YearSummary struct {
	Year      int
	Rows      int
	Works     int
	Authors   int
	Countries int
	Fields    int
}

type yearSets struct {
	rows      int
	works     map[string]struct{}
	authors   map[string]struct{}
	countries map[string]struct{}
	fields    map[string]struct{}
}

// BuildYearSummaries counts distinct works, authors, countries and fields per
// year. Fields are split with importer.SplitFieldString and compared
// case-insensitively; empty countries and fields are not counted.
func BuildYearSummaries(rows []work.Row) []YearSummary {
	if len(rows) == 0 {
		return []YearSummary{}
	}

	byYear := make(map[int]*yearSets)
	for _, row := range rows {
		sets, ok := byYear[row.Year]
		if !ok {
			sets = &yearSets{
				works:     make(map[string]struct{}),
				authors:   make(map[string]struct{}),
				countries: make(map[string]struct{}),
				fields:    make(map[string]struct{}),
			}
			byYear[row.Year] = sets
		}

		sets.rows++
		sets.works[row.WorkID] = struct{}{}
		sets.authors[row.AuthorID] = struct{}{}
		if row.Country != "" {
			sets.countries[row.Country] = struct{}{}
		}
		for _, field := range importer.SplitFieldString(row.Field) {
			sets.fields[strings.ToLower(field)] = struct{}{}
		}
	}

	years := loader.YearsFrom(rows)
	summaries := make([]YearSummary, 0, len(years))
	for _, year := range years {
		sets := byYear[year]
		summaries = append(summaries, YearSummary{
			Year:      year,
			Rows:      sets.rows,
			Works:     len(sets.works),
			Authors:   len(sets.authors),
			Countries: len(sets.countries),
			Fields:    len(sets.fields),
		})
	}

	return summaries
}

var yearSummaryHeaders = []string{"Year", "Rows", "Works", "Authors", "Countries", "Fields"}

func WriteYearSummaries(path, format string, summaries []YearSummary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeYearSummariesCSV(path, summaries)
	case "excel", "xlsx":
		return writeYearSummariesExcel(path, summaries)
	default:
		return fmt.Errorf("unsupported output format for yearly summaries: %s", format)
	}
}
