package generator

import (
	"fmt"
	"sort"
	"strings"

	"studyaid-backend/internal/analysis"
)

const (
	// MinQuestionText is the shortest cleaned text open questions are built from.
	MinQuestionText = 20

	ShortContentPrompt = "Provide more content to generate meaningful questions."
	summarizePrompt    = "Summarize the main points of the passage in your own words."

	questionKeywords = 8
	questionIdeas    = 3
)

// QuestionSet is the output of one open-question pass.
type QuestionSet struct {
	Questions []string `json:"questions" yaml:"questions"`
	Keywords  []string `json:"keywords" yaml:"keywords"`
}

// MainIdeas scores each sentence by word count plus a bonus for appearing
// early, and returns the n best in score order.
func MainIdeas(doc analysis.Document, n int) []string {
	type scored struct {
		sentence string
		score    int
	}

	all := make([]scored, len(doc.Sentences))
	for i, s := range doc.Sentences {
		all[i] = scored{sentence: s, score: len(strings.Fields(s)) + max(0, 10-i)}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})

	if n > len(all) {
		n = len(all)
	}
	ideas := make([]string, 0, n)
	for _, s := range all[:n] {
		ideas = append(ideas, s.sentence)
	}
	return ideas
}

var keywordQuestions = []func(string) string{
	func(k string) string { return fmt.Sprintf("What is '%s'? Explain in your own words.", k) },
	func(k string) string { return fmt.Sprintf("Why is '%s' significant in the context of this topic?", k) },
	func(k string) string { return fmt.Sprintf("Describe a real-world application or example of '%s'.", k) },
	func(k string) string { return fmt.Sprintf("Describe the process or steps involved in '%s'.", k) },
	func(k string) string { return fmt.Sprintf("What problems or challenges are associated with '%s'?", k) },
	func(k string) string {
		return fmt.Sprintf("How does '%s' contribute to the overall understanding of the topic?", k)
	},
}

type questionList struct {
	items []string
	seen  map[string]struct{}
	limit int
}

// add appends q unless it was already produced. It reports whether the list is full.
func (l *questionList) add(q string) bool {
	if _, dup := l.seen[q]; !dup {
		l.seen[q] = struct{}{}
		l.items = append(l.items, q)
	}
	return len(l.items) >= l.limit
}

// Questions builds up to count exam-style open questions. Fact-based prompts
// come first, then main-idea prompts, then keyword prompts, then a summary prompt.
func Questions(doc analysis.Document, count int) QuestionSet {
	if len(strings.TrimSpace(doc.Text)) < MinQuestionText || count <= 0 {
		return QuestionSet{Questions: []string{ShortContentPrompt}}
	}

	ideas := MainIdeas(doc, questionIdeas)
	keywords := analysis.FrequencyKeywords(doc.Text, questionKeywords)
	facts := analysis.ExtractFacts(doc)

	list := &questionList{seen: make(map[string]struct{}), limit: count}
	done := func() QuestionSet {
		return QuestionSet{Questions: list.items, Keywords: keywords}
	}

	for _, d := range head(facts.Definitions, 2) {
		if list.add(fmt.Sprintf("Define '%s' in simple terms and give one key point.", d.Term)) {
			return done()
		}
	}
	for _, c := range head(facts.Causes, 2) {
		if list.add(fmt.Sprintf("How does '%s' lead to '%s'? Explain the reasoning.", c.Cause, c.Effect)) {
			return done()
		}
	}
	for _, c := range head(facts.Contrasts, 2) {
		if list.add(fmt.Sprintf("Contrast '%s' and '%s' with one real-world difference.", c.A, c.B)) {
			return done()
		}
	}
	for _, e := range head(facts.Examples, 2) {
		if list.add(fmt.Sprintf("Give two examples of '%s' and state why they fit.", e.Topic)) {
			return done()
		}
	}
	for _, e := range head(facts.Enumerations, 1) {
		if list.add(fmt.Sprintf("List three items under '%s' and explain each in one line.", e.Topic)) {
			return done()
		}
	}
	if len(facts.Processes) > 0 {
		if list.add("Outline the main steps of the process and the goal of each step.") {
			return done()
		}
	}

	for _, s := range ideas {
		var q string
		if len(list.items)%2 == 0 {
			q = fmt.Sprintf("Explain the meaning of the following statement: \"%s\"", s)
		} else {
			q = fmt.Sprintf("Why is the following point important: \"%s\"", s)
		}
		if list.add(q) {
			return done()
		}
	}

	for i, k := range keywords {
		if list.add(keywordQuestions[i%len(keywordQuestions)](k)) {
			return done()
		}
	}

	list.add(summarizePrompt)
	return done()
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
