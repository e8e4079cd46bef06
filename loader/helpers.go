package loader

import (
	"sort"
	"strings"

	"worksvis/work"
)

// YearsFrom returns the distinct years of rows in ascending order.
func YearsFrom(rows []work.Row) []int {
	seen := make(map[int]struct{}, 16)
	years := make([]int, 0, 16)
	for _, row := range rows {
		if _, ok := seen[row.Year]; ok {
			continue
		}
		seen[row.Year] = struct{}{}
		years = append(years, row.Year)
	}
	sort.Ints(years)
	return years
}

// ShortAuthorID turns "https://openalex.org/A123" into "A123".
func ShortAuthorID(authorID string) string {
	if authorID == "" {
		return ""
	}
	last := authorID[strings.LastIndex(authorID, "/")+1:]
	if last == "" {
		return authorID
	}
	return last
}
