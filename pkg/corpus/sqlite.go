package corpus

import (
	"context"
	"path/filepath"

	"github.com/japaniel/punderer/pkg/db"
)

// SQLiteSource reads phrases from a phrase database built with pkg/db.
// The database is opened read-only.
type SQLiteSource struct {
	Path string
}

func (s SQLiteSource) Name() string { return s.Path }

// Load returns every stored phrase. Rows without a source are tagged with
// the database file name.
func (s SQLiteSource) Load(ctx context.Context) ([]Phrase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conn, err := db.OpenReadOnly(s.Path)
	if err != nil {
		return nil, &FilesystemError{Path: s.Path, Err: err}
	}
	defer conn.Close()

	rows, err := db.ListPhrases(conn)
	if err != nil {
		return nil, &FilesystemError{Path: s.Path, Err: err}
	}

	fallback := filepath.Base(s.Path)
	phrases := make([]Phrase, 0, len(rows))
	for _, r := range rows {
		source := r.Source
		if source == "" {
			source = fallback
		}
		phrases = append(phrases, Phrase{Content: r.Content, Source: source})
	}
	return phrases, nil
}
