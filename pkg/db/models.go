package db

import "time"

// Phrase is a stored corpus line.
type Phrase struct {
	ID      int64
	Content string
	Source  string
	AddedAt time.Time
}
