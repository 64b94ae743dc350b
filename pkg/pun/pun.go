// Package pun substitutes a target word into phrases wherever a rhyming
// word appears as a whole token.
package pun

import (
	"strings"

	"github.com/japaniel/punderer/pkg/corpus"
	"github.com/japaniel/punderer/pkg/rhyme"
)

// Pun is a phrase with a rhyming word swapped for the target word.
type Pun struct {
	Original  string // phrase as it appears in the corpus
	Generated string // lower-cased phrase after substitution
	RhymeWord string // the rhyme that was replaced
}

// ReplaceWord replaces every whitespace-delimited token of phrase equal to
// word with replacement and rejoins the tokens with single spaces. Tokens
// that merely contain word are left alone. The bool reports whether any
// token was replaced.
func ReplaceWord(phrase, word, replacement string) (string, bool) {
	tokens := strings.Fields(phrase)
	replaced := false
	for i, tok := range tokens {
		if tok == word {
			tokens[i] = replacement
			replaced = true
		}
	}
	return strings.Join(tokens, " "), replaced
}

// Generate builds every pun for the (phrase, rhyme) pairs. Matching is
// case-insensitive: each phrase is lower-cased once, while target keeps the
// caller's casing. A pair yields a pun only if the text actually changed.
// Output follows phrase order, then rhyme order.
func Generate(phrases []corpus.Phrase, rhymes []rhyme.Rhyme, target string) []Pun {
	words := make([]string, len(rhymes))
	for i, r := range rhymes {
		words[i] = strings.ToLower(r.Word)
	}

	var puns []Pun
	for _, p := range phrases {
		lower := strings.ToLower(p.Content)
		normalized := strings.Join(strings.Fields(lower), " ")
		for i, w := range words {
			generated, replaced := ReplaceWord(lower, w, target)
			if !replaced || generated == normalized {
				continue
			}
			puns = append(puns, Pun{
				Original:  p.Content,
				Generated: generated,
				RhymeWord: rhymes[i].Word,
			})
		}
	}
	return puns
}
