package generator

import (
	"fmt"
	"strings"

	"studyaid-backend/internal/analysis"
)

// OptionCount is the number of options every item carries.
const OptionCount = 4

// MCQItem is one multiple-choice question. Options are shuffled once when the
// item is built; Answer is always one of Options.
type MCQItem struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Answer   string   `json:"answer" yaml:"answer"`
	Concept  string   `json:"concept" yaml:"concept"`
}

// AnswerIndex returns the position of Answer within Options, or -1.
func (m MCQItem) AnswerIndex() int {
	for i, o := range m.Options {
		if o == m.Answer {
			return i
		}
	}
	return -1
}

// Offers reports whether option is one of the item's options.
func (m MCQItem) Offers(option string) bool {
	for _, o := range m.Options {
		if o == option {
			return true
		}
	}
	return false
}

const (
	maxFrequencyQuestions = 12
	candidatePool         = 20
	examKeywords          = 10
	examIdeas             = 5
	definitionAnswerLen   = 140
	borrowedIdeaLen       = 120
	fallbackAnswerLen     = 80
	unlistedItem          = "A plausible but unlisted item from the same category"
)

var placeholderConcepts = []string{"ConceptA", "ConceptB", "ConceptC", "ConceptD", "ConceptE"}

var distractorPatterns = []string{
	"%s is mainly an example or case, not the core concept.",
	"%s commonly refers to a method rather than the concept itself.",
	"%s often denotes an effect or result, not the definition.",
	"%s is a related concept but not correct in this context.",
}

// fillerOptions pad an item that ended up with fewer than four distinct options.
var fillerOptions = []string{
	"A specific example rather than a definition.",
	"A method or procedure unrelated to the concept.",
	"An outcome that the passage does not describe.",
	"None of the statements above is supported by the passage.",
}

// buildItem dedups distractors against the answer and each other, pads with
// fillers up to four options and shuffles once.
func (g *Generator) buildItem(question, concept, answer string, distractors []string, fillers ...string) MCQItem {
	answer = strings.TrimSpace(answer)
	options := []string{answer}
	has := func(s string) bool {
		for _, o := range options {
			if o == s {
				return true
			}
		}
		return false
	}

	for _, d := range distractors {
		d = strings.TrimSpace(d)
		if d == "" || has(d) {
			continue
		}
		options = append(options, d)
		if len(options) == OptionCount {
			break
		}
	}
	for _, f := range append(fillers, fillerOptions...) {
		if len(options) == OptionCount {
			break
		}
		if !has(f) {
			options = append(options, f)
		}
	}

	g.shuffle(options)
	return MCQItem{Question: question, Options: options, Answer: answer, Concept: concept}
}

// FrequencyMCQs builds one item per top candidate keyword with template stems
// and fixed-shape answers.
func (g *Generator) FrequencyMCQs(doc analysis.Document, minQ int) []MCQItem {
	words := analysis.CandidateTerms(doc.Text, candidatePool)
	num := max(minQ, min(maxFrequencyQuestions, len(words)/2))
	templates := Templates(analysis.Classify(doc.Text))

	keys := head(words, num)
	if len(keys) == 0 {
		keys = placeholderConcepts
	}

	items := make([]MCQItem, 0, len(keys))
	for _, key := range keys {
		question, _ := Fill(g.pick(templates), key)
		correct := fmt.Sprintf("%s refers to a central concept that explains an important idea or role in this topic.", key)

		distractors := []string{fmt.Sprintf(distractorPatterns[0], key)}
		if others := without(keys, key); len(others) > 0 {
			distractors = append(distractors, fmt.Sprintf("%s, a related term that may be confused with %s.", g.pick(others), key))
		} else {
			distractors = append(distractors, fmt.Sprintf(distractorPatterns[1], key))
		}
		distractors = append(distractors, fmt.Sprintf(distractorPatterns[2], key))

		items = append(items, g.buildItem(question, key, correct, distractors))
	}
	return items
}

var examStems = []func(k, s string) string{
	func(k, _ string) string { return fmt.Sprintf("What is the best definition of '%s'?", k) },
	func(k, _ string) string { return fmt.Sprintf("Which statement best describes the significance of '%s'?", k) },
	func(k, _ string) string {
		return fmt.Sprintf("In the context of the passage, what is a key application of '%s'?", k)
	},
	func(k, _ string) string { return fmt.Sprintf("Which of the following is most accurate about '%s'?", k) },
	func(k, _ string) string { return fmt.Sprintf("Based on the passage, which is true regarding '%s'?", k) },
	func(k, _ string) string { return fmt.Sprintf("According to the text, what is a challenge related to '%s'?", k) },
	func(_, s string) string { return fmt.Sprintf("Which option best explains the following statement: \"%s\"", s) },
}

type examQuiz struct {
	g         *Generator
	items     []MCQItem
	questions map[string]struct{}
	limit     int
}

// add records an item unless its question was already asked. It reports whether the quiz is full.
func (q *examQuiz) add(question, concept, answer string, distractors []string, fillers ...string) bool {
	if _, dup := q.questions[question]; dup {
		return len(q.items) >= q.limit
	}
	q.questions[question] = struct{}{}
	q.items = append(q.items, q.g.buildItem(question, concept, answer, distractors, fillers...))
	return len(q.items) >= q.limit
}

// ExamMCQs builds exam-style items from extracted facts first, then tops the
// quiz up to minQ from keywords and main ideas.
func (g *Generator) ExamMCQs(doc analysis.Document, minQ int) []MCQItem {
	ideas := MainIdeas(doc, examIdeas)
	keywords := analysis.FrequencyKeywords(doc.Text, examKeywords)
	facts := analysis.ExtractFacts(doc)

	quiz := &examQuiz{g: g, questions: make(map[string]struct{}), limit: minQ}

	var terms []string
	for _, d := range facts.Definitions {
		terms = append(terms, d.Term)
	}

	for _, d := range head(facts.Definitions, 2) {
		correct := truncate(d.Text, definitionAnswerLen)
		question := fmt.Sprintf("Which option best defines '%s'?", d.Term)
		if quiz.add(question, d.Term, correct, g.distractors(correct, d.Term, without(terms, d.Term), ideas)) {
			return quiz.items
		}
	}

	for _, c := range head(facts.Causes, 2) {
		question := fmt.Sprintf("According to the passage, '%s' most directly leads to which outcome?", c.Cause)
		if quiz.add(question, c.Cause, c.Effect, g.distractors(c.Effect, c.Cause, without(keywords, c.Cause), ideas)) {
			return quiz.items
		}
	}

	for _, c := range head(facts.Contrasts, 2) {
		concept := fmt.Sprintf("%s vs %s", c.A, c.B)
		correct := fmt.Sprintf("%s differs from %s in purpose or behavior as described.", c.A, c.B)
		question := fmt.Sprintf("Which option correctly distinguishes '%s' from '%s'?", c.A, c.B)
		if quiz.add(question, concept, correct, g.distractors(correct, concept, keywords, ideas)) {
			return quiz.items
		}
	}

	for _, e := range head(facts.Enumerations, 1) {
		question := fmt.Sprintf("Which of the following is listed as part of '%s' in the passage?", e.Topic)
		if quiz.add(question, e.Topic, e.Items[0], head(e.Items[1:], 2), unlistedItem) {
			return quiz.items
		}
	}

	for i := 0; i < max(minQ, 5); i++ {
		k := "the main concept"
		switch {
		case i < len(keywords):
			k = keywords[i]
		case len(keywords) > 0:
			k = keywords[0]
		}
		s := ""
		if i < len(ideas) {
			s = ideas[i]
		}

		var correct string
		switch {
		case s == "":
			correct = fmt.Sprintf("%s is a key concept discussed.", k)
		default:
			correct = fmt.Sprintf("%s: %s", k, clip(s, fallbackAnswerLen))
		}
		distractors := []string{
			fmt.Sprintf("%s is unrelated to the topic.", k),
			fmt.Sprintf("%s is not mentioned.", k),
			fmt.Sprintf("%s means the opposite.", k),
		}
		if quiz.add(examStems[i%len(examStems)](k, s), k, correct, distractors) {
			break
		}
	}
	return quiz.items
}

// distractors assembles the wrong answers for a fact-based item: an incomplete
// reading, a confuser from another term, a misconception and, when available,
// a snippet of a different main idea.
func (g *Generator) distractors(correct, concept string, terms, ideas []string) []string {
	out := []string{fmt.Sprintf("%s: a related aspect mentioned indirectly, but not the full meaning.", concept)}
	if len(terms) > 0 {
		out = append(out, fmt.Sprintf("%s, closely related but not the same as %s.", g.pick(terms), concept))
	}
	out = append(out, fmt.Sprintf("A common misconception about %s, not supported by the passage.", concept))
	for _, idea := range ideas {
		if !strings.Contains(idea, correct) {
			out = append(out, truncate(idea, borrowedIdeaLen))
			break
		}
	}
	return out
}

func without(items []string, drop string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !strings.EqualFold(it, drop) {
			out = append(out, it)
		}
	}
	return out
}
