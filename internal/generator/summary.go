package generator

import (
	"fmt"
	"strings"

	"studyaid-backend/internal/analysis"
)

const (
	summaryKeywords = 6
	summaryWidth    = 100
)

var placeholderTerms = []string{"concept", "principle", "application"}

// Summary is the generated summary paragraph and a one-line study hint.
type Summary struct {
	Summary string `json:"summary" yaml:"summary"`
	Insight string `json:"insight" yaml:"insight"`
}

// Summarize names the top keyword and its next three companions in a fixed
// four-sentence paragraph wrapped for display.
func Summarize(doc analysis.Document) Summary {
	if doc.Empty() {
		return Summary{}
	}

	terms := analysis.CandidateTerms(doc.Text, summaryKeywords)
	if len(terms) == 0 {
		terms = placeholderTerms
	}
	main := terms[0]
	context := strings.Join(head(terms[1:], 3), ", ")
	if context == "" {
		context = "the surrounding ideas"
	}

	paragraph := fmt.Sprintf("The passage explores the idea of **%s**, focusing on how it shapes understanding and practice. ", main) +
		fmt.Sprintf("It connects %s with %s, showing their relevance in real-world learning. ", main, context) +
		"The explanation builds clarity by relating each idea to familiar examples, helping learners link theory with practice. " +
		fmt.Sprintf("In essence, %s acts as the foundation that supports deeper insight into the overall topic.", main)

	return Summary{
		Summary: Wrap(paragraph, summaryWidth),
		Insight: fmt.Sprintf("Focus on how %s relates to %s; it often forms the key link for exam answers.", main, context),
	}
}

// Wrap greedily packs words into lines of at most width runes. A word longer
// than width first fills what is left of the current line, then is split
// across as many full-width lines as it needs.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	width = max(width, 1)

	var b strings.Builder
	lineLen := 0
	for _, w := range words {
		word := []rune(w)
		if lineLen > 0 {
			if lineLen+1+len(word) <= width {
				b.WriteByte(' ')
				b.WriteString(w)
				lineLen += 1 + len(word)
				continue
			}
			if len(word) <= width {
				b.WriteByte('\n')
				b.WriteString(w)
				lineLen = len(word)
				continue
			}
			if room := width - lineLen - 1; room > 0 {
				b.WriteByte(' ')
				b.WriteString(string(word[:room]))
				word = word[room:]
			}
			b.WriteByte('\n')
		}
		for len(word) > width {
			b.WriteString(string(word[:width]))
			b.WriteByte('\n')
			word = word[width:]
		}
		b.WriteString(string(word))
		lineLen = len(word)
	}
	return b.String()
}
