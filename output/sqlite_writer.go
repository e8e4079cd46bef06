package output

import (
	"worksvis/loader"
	"worksvis/storage"
	"worksvis/work"
)

// SQLiteWriter replaces the works table of the database at path.
type SQLiteWriter struct{}

func (w *SQLiteWriter) Write(path string, rows []work.Row) error {
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.ReplaceWorks(rows, loader.ShortAuthorID)
	return err
}
