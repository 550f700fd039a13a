// Package generator turns extracted keywords and facts into study aids:
// open questions, multiple-choice items and a summary paragraph.
package generator

import (
	"math/rand/v2"
	"unicode/utf8"
)

// Generator owns the random source used for template choice, distractor
// choice and option shuffling. The zero value uses the global source.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator drawing from rng, or from the global source when rng is nil.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) intN(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (g *Generator) shuffle(items []string) {
	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	if g.rng != nil {
		g.rng.Shuffle(len(items), swap)
		return
	}
	rand.Shuffle(len(items), swap)
}

func (g *Generator) pick(items []string) string {
	return items[g.intN(len(items))]
}

// truncate cuts s to at most limit runes, ending with "..." when cut.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-3]) + "..."
}

// clip keeps the first limit runes of s and appends "..." when anything was cut.
func clip(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
