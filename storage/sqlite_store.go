package storage

import (
	"database/sql"
	"fmt"
	"worksvis/work"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps an exported snapshot of normalized rows. The loader never
// reads from it.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS works (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	work_id TEXT NOT NULL CHECK(work_id <> ''),
	author_id TEXT NOT NULL CHECK(author_id <> ''),
	short_author_id TEXT NOT NULL,
	country TEXT NOT NULL,
	field TEXT NOT NULL,
	year INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_works_year ON works(year);
CREATE INDEX IF NOT EXISTS idx_works_author ON works(author_id);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// ReplaceWorks rewrites the snapshot with rows in one transaction. shortID
// derives the stored short author id.
func (s *SQLiteStore) ReplaceWorks(rows []work.Row, shortID func(string) string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM works;`); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("clear works: %w", err)
	}

	const insertStmt = `
INSERT INTO works (
	work_id,
	author_id,
	short_author_id,
	country,
	field,
	year
) VALUES (?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, row := range rows {
		if _, err := stmt.Exec(
			row.WorkID,
			row.AuthorID,
			shortID(row.AuthorID),
			row.Country,
			row.Field,
			row.Year,
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert work %s/%s: %w", row.WorkID, row.AuthorID, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ListWorks returns the snapshot in insertion order.
func (s *SQLiteStore) ListWorks() ([]work.Row, error) {
	const query = `
SELECT
	work_id,
	author_id,
	country,
	field,
	year
FROM works
ORDER BY id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query works: %w", err)
	}
	defer rows.Close()

	out := make([]work.Row, 0, 256)
	for rows.Next() {
		var row work.Row
		if err := rows.Scan(
			&row.WorkID,
			&row.AuthorID,
			&row.Country,
			&row.Field,
			&row.Year,
		); err != nil {
			return nil, fmt.Errorf("scan work: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate works: %w", err)
	}

	return out, nil
}

// CountByYear returns the number of stored rows per year.
func (s *SQLiteStore) CountByYear() (map[int]int, error) {
	rows, err := s.db.Query(`SELECT year, COUNT(*) FROM works GROUP BY year;`)
	if err != nil {
		return nil, fmt.Errorf("query year counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var year, count int
		if err := rows.Scan(&year, &count); err != nil {
			return nil, fmt.Errorf("scan year count: %w", err)
		}
		counts[year] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate year counts: %w", err)
	}
	return counts, nil
}
