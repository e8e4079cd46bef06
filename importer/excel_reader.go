package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads the first sheet of a workbook, treating row 1 as header.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]Record, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	return readWorkbook(file)
}

func (r *ExcelReader) ReadFrom(input io.Reader) ([]Record, error) {
	file, err := excelize.OpenReader(input)
	if err != nil {
		return nil, fmt.Errorf("open excel stream: %w", err)
	}
	defer file.Close()

	return readWorkbook(file)
}

func readWorkbook(file *excelize.File) ([]Record, error) {
	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel workbook has no sheets")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}

	normalizedHeaders := normalizeHeaders(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		records = append(records, buildRecord(normalizedHeaders, row, i+2))
	}

	return records, nil
}
