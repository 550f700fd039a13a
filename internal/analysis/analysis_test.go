package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\r\n  ", ""},
		{"windows line breaks", "line one\r\nline two", "line one line two"},
		{"collapses runs", "  a   b\n\n\tc  ", "a b c"},
		{"no-break spaces", "Osmosis moves water.\u00a0\u00a0Diffusion spreads.", "Osmosis moves water. Diffusion spreads."},
		{"vertical tab", "one\vtwo", "one two"},
		{"line and paragraph separators", "one\u2028two\u2029three", "one two three"},
		{"unicode padding", "\u00a0\u2003text\u3000", "text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clean(tc.raw))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  Osmosis\r\n is   the movement\tof water.  ",
		"  leading nbsp and \v vertical tab \n",
		"1. First\n2) Second\n\n\n3. Third",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First one. Second one!  Third one? Trailing")
	assert.Equal(t, []string{"First one.", "Second one!", "Third one?", "Trailing"}, got)

	assert.Nil(t, SplitSentences(""))
	assert.Equal(t, []string{"No boundary 3.14 here."}, SplitSentences("No boundary 3.14 here."))

	raw := "Osmosis moves water.\u00a0\u00a0Diffusion spreads particles.\vNext line."
	assert.Equal(t, []string{"Osmosis moves water.", "Diffusion spreads particles.", "Next line."}, SplitSentences(raw))
	assert.Equal(t, []string{"Osmosis moves water.", "Diffusion spreads particles.", "Next line."}, SplitSentences(Clean(raw)))
	assert.Len(t, NewDocument("Cells divide.\u2028Tissues form.").Sentences, 2)
}

func TestNewDocument_KeepsLines(t *testing.T) {
	doc := NewDocument("Steps:\n1. Mix\n\n2. Bake\r\n")
	assert.Equal(t, "Steps: 1. Mix 2. Bake", doc.Text)
	assert.Equal(t, []string{"Steps:", "1. Mix", "2. Bake"}, doc.Lines)
	assert.False(t, doc.Empty())
	assert.True(t, NewDocument("  ").Empty())
}

func TestCandidateKeywords_PrefersTechnicalTerms(t *testing.T) {
	text := "Photosynthesis converts sunlight into chemical energy through a process called photophosphorylation."
	terms := CandidateTerms(text, 8)

	index := func(term string) int {
		for i, t := range terms {
			if strings.EqualFold(t, term) {
				return i
			}
		}
		return -1
	}

	photo := index("photophosphorylation")
	synth := index("photosynthesis")
	require.NotEqual(t, -1, photo)
	require.NotEqual(t, -1, synth)

	for _, generic := range []string{"chemical", "energy"} {
		if i := index(generic); i != -1 {
			assert.Less(t, photo, i)
			assert.Less(t, synth, i)
		}
	}
	assert.Equal(t, -1, index("process"), "generic words are filtered")
	assert.Equal(t, -1, index("through"), "stopwords are filtered")
}

func TestCandidateKeywords_ScoreAndDedup(t *testing.T) {
	kws := CandidateKeywords("KERNEL kernel Kernel scheduler", 5)
	require.Len(t, kws, 2)
	assert.Equal(t, "KERNEL", kws[0].Term)
	assert.InDelta(t, 6*(1+0.3*3)+2, kws[0].Score, 1e-9)
	assert.Equal(t, "scheduler", kws[1].Term)
}

func TestCandidateKeywords_FallbackWhenNothingTechnical(t *testing.T) {
	kws := CandidateKeywords("apple mango grape", 2)
	require.Len(t, kws, 2)
	assert.Nil(t, CandidateKeywords("", 3))
}

func TestFrequencyKeywords(t *testing.T) {
	text := "Mitochondria produce energy. energy drives cells and energy matters. cells divide."
	got := FrequencyKeywords(text, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Mitochondria", got[0], "capitalised tokens come first")
	assert.Equal(t, "energy", got[1])
	assert.Equal(t, "cells", got[2])
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Domain
	}{
		{"coding", "The function uses recursion over an array.", DomainCoding},
		{"medical", "Diagnosis of the disease needs imaging.", DomainMedical},
		{"science", "An enzyme speeds up the reaction.", DomainScience},
		{"generic", "The treaty ended the war.", DomainGeneric},
		{"coding wins ties", "A server stores symptom data in a database for diagnosis of disease.", DomainCoding},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.text))
			assert.Equal(t, Classify(tc.text), Classify(tc.text))
		})
	}
}

func TestExtractFacts_OsmosisScenario(t *testing.T) {
	doc := NewDocument("Osmosis is the movement of water across a membrane. It causes cells to swell because water enters the cell.")
	facts := ExtractFacts(doc)

	require.NotEmpty(t, facts.Definitions)
	assert.Contains(t, facts.Definitions[0].Term, "Osmosis")
	assert.Equal(t, "the movement of water across a membrane", facts.Definitions[0].Text)

	require.NotEmpty(t, facts.Causes)
	assert.Contains(t, facts.Causes[0].Cause, "causes cells to swell")
	assert.Equal(t, "water enters the cell", facts.Causes[0].Effect)
}

func TestDefinitionRule(t *testing.T) {
	tests := []struct {
		sentence string
		term     string
		ok       bool
	}{
		{"Entropy refers to the measure of disorder.", "Entropy", true},
		{"Vaccines are biological preparations that train immunity.", "Vaccines", true},
		{"A is tiny.", "", false},
		{"Nothing to see here.", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.sentence, func(t *testing.T) {
			var f Facts
			matchDefinition(tc.sentence, &f)
			if !tc.ok {
				assert.Empty(t, f.Definitions)
				return
			}
			require.Len(t, f.Definitions, 1)
			assert.Equal(t, tc.term, f.Definitions[0].Term)
		})
	}
}

func TestCauseRule(t *testing.T) {
	tests := []struct {
		sentence string
		cause    string
		effect   string
	}{
		{"Smoking leads to lung damage.", "Smoking", "lung damage"},
		{"Heat TRIGGERS expansion of metals.", "Heat", "expansion of metals"},
		{"Prices rose; therefore demand fell.", "Prices rose", "demand fell"},
		{"The road was icy so the bus slowed.", "The road was icy", "the bus slowed"},
	}
	for _, tc := range tests {
		t.Run(tc.sentence, func(t *testing.T) {
			var f Facts
			matchCause(tc.sentence, &f)
			require.Len(t, f.Causes, 1)
			assert.Equal(t, tc.cause, f.Causes[0].Cause)
			assert.Equal(t, tc.effect, f.Causes[0].Effect)
		})
	}

	var f Facts
	matchCause("Go so go.", &f)
	assert.Empty(t, f.Causes, "spans of two characters or fewer are rejected")
}

func TestContrastRule(t *testing.T) {
	var f Facts
	matchContrast("Mitosis makes two cells; however, meiosis makes four.", &f)
	matchContrast("Arrays are fixed whereas slices grow.", &f)
	matchContrast("Nothing contrasting here.", &f)

	require.Len(t, f.Contrasts, 2)
	assert.Equal(t, Contrast{A: "Mitosis makes two cells", B: "meiosis makes four"}, f.Contrasts[0])
	assert.Equal(t, Contrast{A: "Arrays are fixed", B: "slices grow"}, f.Contrasts[1])
}

func TestExampleRule(t *testing.T) {
	var f Facts
	matchExamples("Noble gases such as helium, neon and argon are inert.", &f)

	require.Len(t, f.Examples, 3)
	assert.Equal(t, "Noble gases", f.Examples[0].Topic)
	assert.Equal(t, "helium", f.Examples[0].Item)
	assert.Equal(t, "neon", f.Examples[1].Item)
	assert.Equal(t, "argon are inert.", f.Examples[2].Item)
}

func TestEnumerationRule(t *testing.T) {
	var f Facts
	matchEnumeration("Primary colours: red, blue and yellow.", &f)
	matchEnumeration("Only one: red.", &f)
	matchEnumeration("Many: a1, b2, c3, d4, e5, f6, g7, h8", &f)

	require.Len(t, f.Enumerations, 2)
	assert.Equal(t, "Primary colours", f.Enumerations[0].Topic)
	assert.Equal(t, []string{"red", "blue", "yellow."}, f.Enumerations[0].Items)
	assert.Len(t, f.Enumerations[1].Items, maxListItems)
}

func TestProcessRule(t *testing.T) {
	doc := NewDocument("How to brew:\n1. Boil water\n2) Add leaves\nwait a bit\n3. Pour\n4. Serve\n5. Sip\n6. Wash\n7. Dry")
	facts := ExtractFacts(doc)

	require.Len(t, facts.Processes, 1)
	assert.Equal(t, "Steps", facts.Processes[0].Label)
	assert.Equal(t, []string{"Boil water", "Add leaves", "Pour", "Serve", "Sip", "Wash"}, facts.Processes[0].Steps)
}

func TestExtractor_CustomRules(t *testing.T) {
	called := 0
	rule := Rule{Name: "count", Sentence: func(string, *Facts) { called++ }}
	NewExtractor(rule).Extract(NewDocument("One. Two. Three."))
	assert.Equal(t, 3, called)
}

func TestExtractFacts_Empty(t *testing.T) {
	facts := ExtractFacts(NewDocument(""))
	assert.Empty(t, facts.Definitions)
	assert.Empty(t, facts.Processes)
}
