// Package present picks puns at random and prints them as a table.
package present

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/japaniel/punderer/pkg/pun"
)

// Sample returns n puns chosen uniformly at random without replacement.
// If n exceeds the number of puns, all of them are returned in random
// order. The input slice is not modified.
func Sample(puns []pun.Pun, n int, rng *rand.Rand) []pun.Pun {
	if n <= 0 || len(puns) == 0 {
		return nil
	}
	if n > len(puns) {
		n = len(puns)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	pool := make([]pun.Pun, len(puns))
	copy(pool, puns)
	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Headers are the column titles of the rendered table.
var Headers = []string{"Pun", "Original", "Rhyme word"}

// RenderTable writes puns as a bordered three-column table.
func RenderTable(w io.Writer, puns []pun.Pun) error {
	rows := make([][]string, 0, len(puns))
	for _, p := range puns {
		rows = append(rows, []string{p.Generated, p.Original, p.RhymeWord})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(Headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
