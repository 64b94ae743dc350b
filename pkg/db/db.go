package db

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS phrases (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	content TEXT NOT NULL,
	source  TEXT NOT NULL DEFAULT '',
	added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(content, source)
);
CREATE INDEX IF NOT EXISTS idx_phrases_source ON phrases(source);
`

// InitDB runs migrations on the given DB connection. It is safe to call on
// an already initialized database.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// OpenReadOnly opens an existing phrase database without creating it.
func OpenReadOnly(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	// Fail here rather than on the first query when the file is missing.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
