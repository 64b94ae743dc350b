package corpus

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExt is the extension of plain-text phrase files.
const DefaultExt = ".txt"

const maxLineSize = 1 << 20

// DirSource reads phrase files from a directory, one phrase per line.
type DirSource struct {
	Dir string
	// Ext selects phrase files; other entries are skipped. Empty means DefaultExt.
	Ext string
	// Workers bounds how many files are read at once.
	Workers int
}

func (d DirSource) Name() string { return d.Dir }

// Load reads every matching file, one job per file. Line order within a
// file is kept; blank lines are dropped.
func (d DirSource) Load(ctx context.Context) ([]Phrase, error) {
	files, err := d.phraseFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	// Each job owns one slot, so no locking is needed.
	results := make([][]Phrase, len(files))

	pool := NewWorkerPool(d.Workers, len(files))
	pool.Start(ctx)
	for i, path := range files {
		err := pool.SubmitCtx(ctx, func(ctx context.Context) error {
			phrases, err := readPhrases(path)
			if err != nil {
				return err
			}
			results[i] = phrases
			return nil
		})
		if err != nil {
			pool.Close()
			return nil, err
		}
	}
	pool.Close()

	if err := pool.Err(); err != nil {
		return nil, err
	}
	// Workers stop early on cancellation, leaving some slots unfilled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Phrase
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (d DirSource) phraseFiles() ([]string, error) {
	ext := d.Ext
	if ext == "" {
		ext = DefaultExt
	}
	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, &FilesystemError{Path: d.Dir, Err: err}
	}

	var files []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ext {
			continue
		}
		path := filepath.Join(d.Dir, e.Name())
		// Stat follows symlinks so linked phrase files are included.
		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			// Dangling link or a file removed since ReadDir.
			continue
		}
		if err != nil {
			return nil, &FilesystemError{Path: path, Err: err}
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

func readPhrases(path string) ([]Phrase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FilesystemError{Path: path, Err: err}
	}
	defer f.Close()

	source := filepath.Base(path)
	var phrases []Phrase

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		phrases = append(phrases, Phrase{Content: text, Source: source})
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Path: path, Line: line + 1, Err: err}
		}
		return nil, &FilesystemError{Path: path, Err: err}
	}
	return phrases, nil
}
