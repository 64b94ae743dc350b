package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// InsertPhrase stores a phrase, ignoring exact duplicates from the same source.
// It reports whether a new row was written.
func InsertPhrase(db DBExecutor, content, source string) (bool, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false, fmt.Errorf("phrase content must be non-empty")
	}
	res, err := db.Exec(`INSERT OR IGNORE INTO phrases (content, source) VALUES (?, ?)`, trimmed, source)
	if err != nil {
		return false, fmt.Errorf("insert phrase: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListPhrases returns all stored phrases in insertion order.
func ListPhrases(db DBExecutor) ([]Phrase, error) {
	rows, err := db.Query(`SELECT id, content, source, added_at FROM phrases ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Phrase
	for rows.Next() {
		var p Phrase
		var source sql.NullString
		var added sql.NullTime
		if err := rows.Scan(&p.ID, &p.Content, &source, &added); err != nil {
			return nil, err
		}
		if source.Valid {
			p.Source = source.String
		}
		if added.Valid {
			p.AddedAt = added.Time
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
