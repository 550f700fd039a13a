package analysis

import (
	"regexp"
	"strings"
)

type Definition struct {
	Term string `json:"term" yaml:"term"`
	Text string `json:"definition" yaml:"definition"`
}

type CauseEffect struct {
	Cause  string `json:"cause" yaml:"cause"`
	Effect string `json:"effect" yaml:"effect"`
}

type Contrast struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

type Example struct {
	Topic string `json:"topic" yaml:"topic"`
	Item  string `json:"item" yaml:"item"`
}

type Enumeration struct {
	Topic string   `json:"topic" yaml:"topic"`
	Items []string `json:"items" yaml:"items"`
}

type Process struct {
	Label string   `json:"label" yaml:"label"`
	Steps []string `json:"steps" yaml:"steps"`
}

// Facts holds everything the rules harvested from one document, grouped by kind.
// A sentence may feed several kinds at once.
type Facts struct {
	Definitions  []Definition  `json:"definitions" yaml:"definitions"`
	Causes       []CauseEffect `json:"causes" yaml:"causes"`
	Contrasts    []Contrast    `json:"contrasts" yaml:"contrasts"`
	Examples     []Example     `json:"examples" yaml:"examples"`
	Enumerations []Enumeration `json:"enumerations" yaml:"enumerations"`
	Processes    []Process     `json:"processes" yaml:"processes"`
}

// Rule harvests one kind of fact. Sentence rules run once per sentence;
// Document rules see the whole document once.
type Rule struct {
	Name     string
	Sentence func(sentence string, facts *Facts)
	Document func(doc Document, facts *Facts)
}

// Extractor applies an ordered list of rules.
type Extractor struct {
	rules []Rule
}

func NewExtractor(rules ...Rule) *Extractor {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Extractor{rules: rules}
}

// Extract runs every rule in order. Each rule walks all sentences before the
// next rule starts, so facts of one kind keep document order.
func (e *Extractor) Extract(doc Document) Facts {
	var facts Facts
	for _, rule := range e.rules {
		if rule.Sentence != nil {
			for _, s := range doc.Sentences {
				rule.Sentence(s, &facts)
			}
		}
		if rule.Document != nil {
			rule.Document(doc, &facts)
		}
	}
	return facts
}

var defaultExtractor = NewExtractor()

// ExtractFacts runs the default rule battery.
func ExtractFacts(doc Document) Facts {
	return defaultExtractor.Extract(doc)
}

// DefaultRules returns the built-in rules: definitions, causes, contrasts,
// examples, enumerations, then numbered process steps.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "definition", Sentence: matchDefinition},
		{Name: "cause", Sentence: matchCause},
		{Name: "contrast", Sentence: matchContrast},
		{Name: "example", Sentence: matchExamples},
		{Name: "enumeration", Sentence: matchEnumeration},
		{Name: "process", Document: matchProcess},
	}
}

const (
	boundaryPunct   = " ,;:."
	maxListItems    = 6
	minTermLen      = 2
	minDefinition   = 5
	minCauseSpanLen = 3
)

var (
	definitionPattern = regexp.MustCompile(`^\s*([A-Z]?[A-Za-z0-9\-/ ]{3,})\s+(is|are|refers to|means)\s+(.*?)[.]?$`)

	causePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(.*?)\s+(causes|leads to|results in|triggers)\s+(.*)`),
		regexp.MustCompile(`(?i)(.*?)\s+because\s+(.*)`),
		regexp.MustCompile(`(?i)(.*?)\s+therefore\s+(.*)`),
		regexp.MustCompile(`(?i)(.*?)\s+so\s+(.*)`),
	}

	contrastPattern = regexp.MustCompile(`(?i)(.*?)(?:;\s*however,\s*|\s+but\s+|\s+whereas\s+)(.*)`)
	examplePattern  = regexp.MustCompile(`(?i)(.*?)(such as|for example|e\.g\.?|including)\s+(.*)`)
	listSeparator   = regexp.MustCompile(`,|;| and `)
	numberedStep    = regexp.MustCompile(`^(\d+)[).]\s*([A-Za-z].+)$`)
)

func matchDefinition(s string, f *Facts) {
	m := definitionPattern.FindStringSubmatch(s)
	if m == nil {
		return
	}
	term := strings.TrimSpace(m[1])
	def := strings.TrimSpace(m[3])
	if len(term) >= minTermLen && len(def) >= minDefinition {
		f.Definitions = append(f.Definitions, Definition{Term: term, Text: def})
	}
}

// matchCause tries each cause pattern in order; the first one whose spans
// survive trimming wins.
func matchCause(s string, f *Facts) {
	for _, p := range causePatterns {
		m := p.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		left := strings.Trim(m[1], boundaryPunct)
		right := strings.Trim(m[len(m)-1], boundaryPunct)
		if len(left) >= minCauseSpanLen && len(right) >= minCauseSpanLen {
			f.Causes = append(f.Causes, CauseEffect{Cause: left, Effect: right})
			return
		}
	}
}

func matchContrast(s string, f *Facts) {
	m := contrastPattern.FindStringSubmatch(s)
	if m == nil {
		return
	}
	a := strings.Trim(m[1], boundaryPunct)
	b := strings.Trim(m[2], boundaryPunct)
	if a != "" && b != "" {
		f.Contrasts = append(f.Contrasts, Contrast{A: a, B: b})
	}
}

func matchExamples(s string, f *Facts) {
	m := examplePattern.FindStringSubmatch(s)
	if m == nil {
		return
	}
	topic := strings.Trim(m[1], boundaryPunct)
	if topic == "" {
		return
	}
	for _, item := range splitList(m[3], 1) {
		f.Examples = append(f.Examples, Example{Topic: topic, Item: item})
	}
}

func matchEnumeration(s string, f *Facts) {
	if !strings.Contains(s, ":") || !strings.Contains(s, ",") {
		return
	}
	topic, rest, _ := strings.Cut(s, ":")
	topic = strings.TrimSpace(topic)
	items := splitList(rest, 2)
	if topic == "" || len(items) < 2 {
		return
	}
	if len(items) > maxListItems {
		items = items[:maxListItems]
	}
	f.Enumerations = append(f.Enumerations, Enumeration{Topic: topic, Items: items})
}

func matchProcess(doc Document, f *Facts) {
	lines := doc.Lines
	if len(lines) == 0 && doc.Text != "" {
		lines = []string{doc.Text}
	}

	var steps []string
	for _, line := range lines {
		if m := numberedStep.FindStringSubmatch(line); m != nil {
			steps = append(steps, strings.TrimSpace(m[2]))
			if len(steps) == maxListItems {
				break
			}
		}
	}
	if len(steps) > 0 {
		f.Processes = append(f.Processes, Process{Label: "Steps", Steps: steps})
	}
}

func splitList(s string, minLen int) []string {
	var items []string
	for _, part := range listSeparator.Split(s, -1) {
		if part = strings.TrimSpace(part); len(part) >= minLen {
			items = append(items, part)
		}
	}
	return items
}
