package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const DraftsTableSchema = `
	CREATE TABLE IF NOT EXISTS drafts (
		id TEXT NOT NULL PRIMARY KEY,
		client_name TEXT NOT NULL DEFAULT '',
		payload BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
`

const DraftsUpdatedIndex = `
	CREATE INDEX IF NOT EXISTS drafts_updated_at ON drafts (updated_at DESC);
`

var bootQueries = []string{
	DraftsTableSchema,
	DraftsUpdatedIndex,
}

type Settings struct {
	DbPath string
}

// NewDB opens the database and creates missing tables. SQLite allows a
// single writer, so the pool is capped at one connection; this also keeps
// ":memory:" databases shared across calls.
func NewDB(settings Settings) (*sql.DB, error) {
	if settings.DbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, query := range bootQueries {
		if _, err := db.ExecContext(context.Background(), query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run boot query: %w", err)
		}
	}
	return db, nil
}
