// Package fuzzy scores declared flag names against an unrecognized one.
// Used by pararg to build the "did you mean" set after an undefined long flag.
package fuzzy

import (
	"github.com/dzonerzy/go-pararg/internal/pool"
)

// Default thresholds on the normalized similarity.
const (
	DefaultInclude = 0.20
	DefaultFavor   = 0.50
)

// Matcher turns similarity scores into a suggestion set
type Matcher struct {
	include float64
	favor   float64
}

// NewMatcher creates a matcher that keeps names scoring at least include and
// favors names scoring at least favor.
func NewMatcher(include, favor float64) *Matcher {
	return &Matcher{include: include, favor: favor}
}

// DefaultMatcher returns a matcher using DefaultInclude and DefaultFavor
func DefaultMatcher() *Matcher {
	return NewMatcher(DefaultInclude, DefaultFavor)
}

// Candidate is one name that passed the include threshold
type Candidate struct {
	Value   string
	Index   int // position in the names passed to Suggest
	Score   float64
	Favored bool
}

// Suggest scores input against every name and returns the ones at or above
// the include threshold. Order follows names; nothing is sorted.
func (m *Matcher) Suggest(input string, names []string) []Candidate {
	var out []Candidate
	for i, name := range names {
		score := Similarity(input, name)
		if score < m.include {
			continue
		}
		out = append(out, Candidate{
			Value:   name,
			Index:   i,
			Score:   score,
			Favored: score >= m.favor,
		})
	}
	return out
}

// Similarity returns 1 - Distance(input, name) / max(len(input), len(name)).
// Two empty strings are identical.
func Similarity(input, name string) float64 {
	longest := max(len(input), len(name))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(input, name))/float64(longest)
}

// Distance calculates the byte-wise Levenshtein distance between input and
// name. Insertion, deletion and substitution each cost one. Only two rows
// are kept, each len(input)+1 cells wide.
func Distance(input, name string) int {
	if len(input) == 0 {
		return len(name)
	}
	if len(name) == 0 {
		return len(input)
	}

	prevBuf := pool.GetRow(len(input) + 1)
	currBuf := pool.GetRow(len(input) + 1)
	defer pool.PutRow(prevBuf)
	defer pool.PutRow(currBuf)

	previousRow, currentRow := *prevBuf, *currBuf

	for j := range previousRow {
		previousRow[j] = j
	}

	for i := 1; i <= len(name); i++ {
		currentRow[0] = i
		for j := 1; j <= len(input); j++ {
			cost := 0
			if input[j-1] != name[i-1] {
				cost = 1
			}
			currentRow[j] = minThree(
				currentRow[j-1]+1,     // insertion
				previousRow[j]+1,      // deletion
				previousRow[j-1]+cost, // substitution
			)
		}
		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(input)]
}

func minThree(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
