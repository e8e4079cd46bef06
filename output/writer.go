package output

import (
	"fmt"
	"strconv"
	"strings"

	"worksvis/loader"
	"worksvis/work"
)

type Writer interface {
	Write(path string, rows []work.Row) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	case "sqlite", "db":
		return &SQLiteWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

var rowHeaders = []string{"WorkID", "AuthorID", "ShortAuthorID", "Country", "Field", "Year"}

func rowValues(row work.Row) []string {
	return []string{
		row.WorkID,
		row.AuthorID,
		loader.ShortAuthorID(row.AuthorID),
		row.Country,
		row.Field,
		strconv.Itoa(row.Year),
	}
}
