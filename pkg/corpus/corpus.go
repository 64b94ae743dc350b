// Package corpus loads the phrases puns are built from.
package corpus

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Phrase is one corpus line tagged with where it came from.
type Phrase struct {
	Content string
	Source  string
}

// Source yields phrases.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Phrase, error)
}

// FilesystemError reports a corpus directory, file or database that could
// not be opened or read.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("corpus %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// ParseError reports a corpus line that could not be read as a phrase.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("corpus %s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads every source concurrently and returns the combined phrases.
// The first failure cancels the remaining sources. Phrase order across
// sources is not guaranteed.
func Load(ctx context.Context, logger *zap.Logger, sources ...Source) ([]Phrase, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	results := make([][]Phrase, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			phrases, err := src.Load(gctx)
			if err != nil {
				return err
			}
			logger.Debug("loaded corpus source",
				zap.String("source", src.Name()),
				zap.Int("phrases", len(phrases)))
			results[i] = phrases
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Phrase
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
