package importer

import (
	"worksvis/work"
)

type Mapper interface {
	Name() string
	Map(record Record) (*work.Row, bool)
}

// WorksMapper maps works_with_authors rows. Rows without work id, author id
// or a numeric year are reported as not ok.
type WorksMapper struct {
	Columns   Columns
	Countries *CountryResolver
}

func NewWorksMapper(columns Columns, countries *CountryResolver) *WorksMapper {
	if countries == nil {
		countries = defaultCountryResolver
	}
	return &WorksMapper{
		Columns:   columns.Merge(DefaultColumns()),
		Countries: countries,
	}
}

func (m *WorksMapper) Name() string {
	return "works"
}

func (m *WorksMapper) Map(record Record) (*work.Row, bool) {
	year, ok := coerceYear(record, m.Columns.Year)
	if !ok {
		return nil, false
	}

	row := &work.Row{
		WorkID:   record.Get(m.Columns.WorkID...),
		AuthorID: record.Get(m.Columns.AuthorID...),
		Country:  m.Countries.Resolve(record.Get(m.Columns.Countries...)),
		Field:    record.Get(m.Columns.Field...),
		Year:     year,
	}
	if !row.Valid() {
		return nil, false
	}
	return row, true
}

// coerceYear returns the first candidate with a non-zero numeric year.
// Otherwise the last candidate decides: zero is kept, while a missing column
// or a non-numeric cell rejects the row.
func coerceYear(record Record, candidates []string) (int, bool) {
	year, ok := 0, false
	for _, candidate := range candidates {
		year, ok = 0, false
		if raw, present := record.Lookup(candidate); present {
			year, ok = parseYear(raw)
		}
		if ok && year != 0 {
			return year, true
		}
	}
	return year, ok
}
