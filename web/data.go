package web

import (
	"path"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"worksvis/importer"
	"worksvis/loader"
	"worksvis/work"
)

type RowFilter struct {
	Year    *int
	Country string
	Field   string
}

type Count struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// FilterRows keeps rows matching every set filter. Country compares case-insensitively;
// Field matches any piece of the row's field list.
func FilterRows(rows []work.Row, filter RowFilter) []work.Row {
	out := make([]work.Row, 0, len(rows))
	for _, row := range rows {
		if filter.Year != nil && row.Year != *filter.Year {
			continue
		}
		if filter.Country != "" && !strings.EqualFold(row.Country, filter.Country) {
			continue
		}
		if filter.Field != "" && !hasField(row, filter.Field) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func hasField(row work.Row, field string) bool {
	for _, piece := range importer.SplitFieldString(row.Field) {
		if fieldKey(piece) == fieldKey(field) {
			return true
		}
	}
	return false
}

// fieldKey folds case and composes accents so "Économie" spelled either way
// and "économie" share one bucket.
func fieldKey(value string) string {
	return cases.Fold().String(norm.NFC.String(value))
}

// FieldCounts counts rows per field piece. A row counts once per distinct piece;
// the first spelling seen is reported.
func FieldCounts(rows []work.Row) []Count {
	counts := make(map[string]*Count)
	for _, row := range rows {
		seen := make(map[string]struct{}, 2)
		for _, piece := range importer.SplitFieldString(row.Field) {
			key := fieldKey(piece)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			entry, ok := counts[key]
			if !ok {
				entry = &Count{Name: piece}
				counts[key] = entry
			}
			entry.Rows++
		}
	}
	return sortedCounts(counts)
}

func CountryCounts(rows []work.Row) []Count {
	counts := make(map[string]*Count)
	for _, row := range rows {
		if row.Country == "" {
			continue
		}
		entry, ok := counts[row.Country]
		if !ok {
			entry = &Count{Name: row.Country}
			counts[row.Country] = entry
		}
		entry.Rows++
	}
	return sortedCounts(counts)
}

// RowsForAuthor matches the full author id, its short form, or the id as
// ServeMux cleans it when sent unescaped (https:/openalex.org/A1).
func RowsForAuthor(rows []work.Row, authorID string) []work.Row {
	out := make([]work.Row, 0, 8)
	for _, row := range rows {
		if row.AuthorID == authorID ||
			loader.ShortAuthorID(row.AuthorID) == authorID ||
			path.Clean(row.AuthorID) == authorID {
			out = append(out, row)
		}
	}
	return out
}

func sortedCounts(counts map[string]*Count) []Count {
	out := make([]Count, 0, len(counts))
	for _, entry := range counts {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rows == out[j].Rows {
			return out[i].Name < out[j].Name
		}
		return out[i].Rows > out[j].Rows
	})
	return out
}
