package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

func writeYearSummariesCSV(path string, summaries []YearSummary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(yearSummaryHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			strconv.Itoa(summary.Year),
			strconv.Itoa(summary.Rows),
			strconv.Itoa(summary.Works),
			strconv.Itoa(summary.Authors),
			strconv.Itoa(summary.Countries),
			strconv.Itoa(summary.Fields),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
