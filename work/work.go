package work

// Row is the normalized publication-authorship record produced by the loader
// and consumed by outputs and the web API.
type Row struct {
	WorkID   string `json:"workId"`
	AuthorID string `json:"authorId"`
	Country  string `json:"country"`
	Field    string `json:"field"`
	Year     int    `json:"year"`
}

// Valid reports whether the row carries the identifiers every cached row must have.
func (r Row) Valid() bool {
	return r.WorkID != "" && r.AuthorID != ""
}
