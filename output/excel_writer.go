package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"worksvis/work"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, rows []work.Row) error {
	table := make([][]any, 0, len(rows))
	for _, row := range rows {
		values := rowValues(row)
		cells := make([]any, len(values))
		for i, value := range values {
			cells[i] = value
		}
		cells[len(cells)-1] = row.Year
		table = append(table, cells)
	}
	return writeSheet(path, rowHeaders, table)
}

// writeSheet writes headers and table into the first sheet of a new workbook.
func writeSheet(path string, headers []string, table [][]any) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, values := range table {
		row := i + 2
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
