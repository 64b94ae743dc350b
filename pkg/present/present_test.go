package present

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/punderer/pkg/pun"
)

func makePuns(n int) []pun.Pun {
	out := make([]pun.Pun, n)
	for i := range out {
		out[i] = pun.Pun{
			Original:  fmt.Sprintf("Phrase %d", i),
			Generated: fmt.Sprintf("pun %d", i),
			RhymeWord: "be",
		}
	}
	return out
}

func TestSampleMoreThanAvailable(t *testing.T) {
	puns := makePuns(3)
	got := Sample(puns, 10, rand.New(rand.NewPCG(1, 2)))
	require.Len(t, got, 3)
	assert.ElementsMatch(t, puns, got)
}

func TestSampleWithoutReplacement(t *testing.T) {
	puns := makePuns(50)
	got := Sample(puns, 20, rand.New(rand.NewPCG(7, 7)))
	require.Len(t, got, 20)

	seen := map[string]bool{}
	for _, p := range got {
		assert.False(t, seen[p.Generated], "duplicate %q", p.Generated)
		seen[p.Generated] = true
		assert.Contains(t, puns, p)
	}
}

func TestSampleDoesNotModifyInput(t *testing.T) {
	puns := makePuns(10)
	before := append([]pun.Pun(nil), puns...)
	Sample(puns, 5, rand.New(rand.NewPCG(3, 4)))
	assert.Equal(t, before, puns)
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	puns := makePuns(30)
	a := Sample(puns, 5, rand.New(rand.NewPCG(42, 0)))
	b := Sample(puns, 5, rand.New(rand.NewPCG(42, 0)))
	assert.Equal(t, a, b)
}

func TestSampleEdgeCases(t *testing.T) {
	assert.Empty(t, Sample(nil, 10, nil))
	assert.Empty(t, Sample(makePuns(3), 0, nil))
	assert.Len(t, Sample(makePuns(3), 2, nil), 2)
}

func TestSampleIsRoughlyUniform(t *testing.T) {
	puns := makePuns(4)
	rng := rand.New(rand.NewPCG(11, 13))
	counts := map[string]int{}
	const rounds = 4000
	for i := 0; i < rounds; i++ {
		for _, p := range Sample(puns, 1, rng) {
			counts[p.Generated]++
		}
	}
	for _, p := range puns {
		// Expect ~1000 each; allow a wide margin.
		assert.InDelta(t, rounds/4, counts[p.Generated], 200, p.Generated)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	err := RenderTable(&buf, []pun.Pun{
		{Original: "Let It Be", Generated: "let it flee", RhymeWord: "be"},
	})
	require.NoError(t, err)

	out := buf.String()
	for _, h := range Headers {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "let it flee")
	assert.Contains(t, out, "Let It Be")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	headerLine, rowLine := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "Rhyme word") {
			headerLine = i
		}
		if strings.Contains(l, "let it flee") {
			rowLine = i
		}
	}
	assert.Less(t, headerLine, rowLine, "header renders above rows")
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, nil))
	assert.Contains(t, buf.String(), "Pun")
}
