package importer

// Columns lists, per logical field, the source column names tried in order.
type Columns struct {
	WorkID    []string
	AuthorID  []string
	Countries []string
	Field     []string
	Year      []string
}

func DefaultColumns() Columns {
	return Columns{
		WorkID:    []string{"work_id", "work"},
		AuthorID:  []string{"author_id"},
		Countries: []string{"countries"},
		Field:     []string{"topic_field_display_name"},
		Year:      []string{"pub_year", "year"},
	}
}

// Merge fills empty lists of c from defaults.
func (c Columns) Merge(defaults Columns) Columns {
	return Columns{
		WorkID:    firstNonEmptyList(c.WorkID, defaults.WorkID),
		AuthorID:  firstNonEmptyList(c.AuthorID, defaults.AuthorID),
		Countries: firstNonEmptyList(c.Countries, defaults.Countries),
		Field:     firstNonEmptyList(c.Field, defaults.Field),
		Year:      firstNonEmptyList(c.Year, defaults.Year),
	}
}

func firstNonEmptyList(values, fallback []string) []string {
	if len(values) > 0 {
		return append([]string(nil), values...)
	}
	return append([]string(nil), fallback...)
}
