package export

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"jobtrack/internal/domain"
)

// SQLiteArchive keeps a local mirror of every exported row, so the history
// survives even if the sheet is edited or wiped. URL is the identity; rows
// already present are skipped.
type SQLiteArchive struct {
	db *sql.DB
}

func OpenSQLiteArchive(path string) (*SQLiteArchive, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite wants a single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date_found TEXT NOT NULL,
  score INTEGER NOT NULL DEFAULT 0,
  title TEXT NOT NULL,
  company TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  salary TEXT NOT NULL DEFAULT '',
  source TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'new',
  url TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_jobs_date_found ON jobs(date_found DESC);
`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive migrate: %w", err)
	}

	return &SQLiteArchive{db: db}, nil
}

func (a *SQLiteArchive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *SQLiteArchive) Append(ctx context.Context, records []domain.JobRecord) (int, error) {
	written := 0
	for _, rec := range records {
		_, err := a.db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs (date_found, score, title, company, location, salary, source, status, url, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			rec.DateFound, rec.Score, rec.Title, "", rec.Location, rec.Salary,
			rec.Source, rec.Status, rec.URL, rec.Description,
		)
		if err != nil {
			return written, fmt.Errorf("archive insert: %w", err)
		}
		var changes int
		if err := a.db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); err == nil && changes > 0 {
			written++
		}
	}
	return written, nil
}
