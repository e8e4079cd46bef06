package importer

import (
	"fmt"
	"io"
	"os"
)

// TSVReader reads tab-separated dumps such as database exports of the works
// table. UTF-16 files with a byte order mark are decoded to UTF-8.
type TSVReader struct{}

func (r *TSVReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tsv file %s: %w", path, err)
	}
	defer file.Close()

	return r.ReadFrom(file)
}

func (r *TSVReader) ReadFrom(input io.Reader) ([]Record, error) {
	return readDelimited(input, '\t', "tsv")
}
