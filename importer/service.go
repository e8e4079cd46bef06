package importer

import (
	"io"
	"worksvis/work"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsMapped     int
	RowsSkipped    int
	Rows           []work.Row
}

// Run reads every path with the reader matching its format and maps the
// records. Rows the mapper rejects are counted, not reported as errors.
func Run(paths []string, format string, mapper Mapper) (*Result, error) {
	result := &Result{Rows: make([]work.Row, 0, 256)}
	for _, path := range paths {
		sourceFormat, err := InferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		records, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.add(records, mapper)
	}

	return result, nil
}

// RunReader is Run for a single already opened stream.
func RunReader(input io.Reader, format string, mapper Mapper) (*Result, error) {
	reader, err := ReaderForFormat(format)
	if err != nil {
		return nil, err
	}

	records, err := reader.ReadFrom(input)
	if err != nil {
		return nil, err
	}

	result := &Result{FilesProcessed: 1, Rows: make([]work.Row, 0, len(records))}
	result.add(records, mapper)
	return result, nil
}

func (r *Result) add(records []Record, mapper Mapper) {
	r.RowsRead += len(records)
	for _, record := range records {
		row, ok := mapper.Map(record)
		if !ok || row == nil {
			r.RowsSkipped++
			continue
		}

		r.RowsMapped++
		r.Rows = append(r.Rows, *row)
	}
}
