package rhyme

import (
	"fmt"
	"strings"
	"unicode"
)

// Rhyme is a single candidate returned by a rhyme lookup service.
type Rhyme struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// KeepSingleWords drops multi-word rhyme phrases (e.g. "boo hoo").
// Substitution works on whitespace tokens, so only single tokens can match.
func KeepSingleWords(rhymes []Rhyme) []Rhyme {
	var out []Rhyme
	for _, r := range rhymes {
		if strings.IndexFunc(r.Word, unicode.IsSpace) >= 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}

// KeepBestScore keeps every rhyme whose score equals the highest score in
// the list. Ties are all retained. An empty input has no maximum, so
// callers must check for it first; nil is returned in that case.
func KeepBestScore(rhymes []Rhyme) []Rhyme {
	if len(rhymes) == 0 {
		return nil
	}
	best := rhymes[0].Score
	for _, r := range rhymes[1:] {
		if r.Score > best {
			best = r.Score
		}
	}
	var out []Rhyme
	for _, r := range rhymes {
		if r.Score == best {
			out = append(out, r)
		}
	}
	return out
}

// Policy selects how the raw rhyme list is narrowed before substitution.
type Policy string

const (
	// PolicySingle keeps single-word rhymes only.
	PolicySingle Policy = "single"
	// PolicyBest keeps single-word rhymes sharing the top score.
	PolicyBest Policy = "best"
)

// ParsePolicy validates a policy name. The empty string means PolicySingle.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicySingle:
		return PolicySingle, nil
	case PolicyBest:
		return PolicyBest, nil
	}
	return "", fmt.Errorf("unknown rhyme filter %q (want %q or %q)", s, PolicySingle, PolicyBest)
}

// Apply runs the policy. Empty lists stay empty.
func (p Policy) Apply(rhymes []Rhyme) []Rhyme {
	out := KeepSingleWords(rhymes)
	if p == PolicyBest && len(out) > 0 {
		out = KeepBestScore(out)
	}
	return out
}
