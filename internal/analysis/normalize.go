package analysis

import (
	"regexp"
	"strings"
)

// \s is ASCII-only in RE2; \p{Z} adds no-break and line/paragraph separators.
var (
	whitespacePattern = regexp.MustCompile(`[\s\p{Z}\v\x{85}]+`)
	sentenceEnd       = regexp.MustCompile(`[.!?][\s\p{Z}\v\x{85}]+`)
)

// Document is the cleaned form of one raw input.
type Document struct {
	Text      string   `json:"text" yaml:"text"`
	Sentences []string `json:"sentences" yaml:"sentences"`

	// Lines keeps the raw line structure, which cleaning throws away.
	// Numbered process steps are only recognisable per line.
	Lines []string `json:"-" yaml:"-"`
}

// NewDocument cleans raw input and splits it into sentences.
func NewDocument(raw string) Document {
	text := Clean(raw)
	return Document{
		Text:      text,
		Sentences: SplitSentences(text),
		Lines:     splitLines(raw),
	}
}

// Empty reports whether the document carries any content.
func (d Document) Empty() bool {
	return d.Text == ""
}

// Clean joins line breaks, collapses whitespace runs to one space and trims the ends.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	t := strings.ReplaceAll(raw, "\r\n", " ")
	t = whitespacePattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// SplitSentences cuts text after '.', '!' or '?' when followed by whitespace.
// Abbreviations and decimals are not special-cased.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		if seg := strings.TrimSpace(text[start : loc[0]+1]); seg != "" {
			out = append(out, seg)
		}
		start = loc[1]
	}
	if seg := strings.TrimSpace(text[start:]); seg != "" {
		out = append(out, seg)
	}
	return out
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
