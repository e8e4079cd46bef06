package output

func writeYearSummariesExcel(path string, summaries []YearSummary) error {
	table := make([][]any, 0, len(summaries))
	for _, summary := range summaries {
		table = append(table, []any{
			summary.Year,
			summary.Rows,
			summary.Works,
			summary.Authors,
			summary.Countries,
			summary.Fields,
		})
	}
	return writeSheet(path, yearSummaryHeaders, table)
}
