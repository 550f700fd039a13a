package generator

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyaid-backend/internal/analysis"
)

const biologyNotes = `Osmosis is the movement of water across a membrane. It causes cells to swell because water enters the cell.
Diffusion spreads particles evenly; however, active transport moves them against the gradient.
Cell organelles: nucleus, mitochondria, ribosomes and the Golgi apparatus.
Enzymes such as amylase, lipase and protease speed up digestion.
Photosynthesis converts sunlight into chemical energy through a process called photophosphorylation.`

var corpus = []string{
	"",
	"x",
	"Short note.",
	biologyNotes,
	"The function uses recursion over an array. A pointer stores memory addresses. The server answers the client.",
	"Steps:\n1. Mix flour\n2. Add water\n3. Knead the dough",
	"word word word word word word word word word word.",
}

func seeded() *Generator {
	return New(rand.New(rand.NewPCG(1, 2)))
}

func assertWellFormed(t *testing.T, items []MCQItem) {
	t.Helper()
	for _, item := range items {
		require.Len(t, item.Options, OptionCount, "question %q", item.Question)
		assert.Contains(t, item.Options, item.Answer)
		seen := map[string]bool{}
		for _, o := range item.Options {
			assert.False(t, seen[o], "duplicate option %q in %q", o, item.Question)
			seen[o] = true
		}
		assert.NotEmpty(t, item.Question)
		assert.NotContains(t, item.Question, slot)
	}
}

func TestExamMCQs_Invariants(t *testing.T) {
	g := seeded()
	for _, text := range corpus {
		items := g.ExamMCQs(analysis.NewDocument(text), 5)
		assert.NotEmpty(t, items, "text %q", text)
		assertWellFormed(t, items)
	}
}

func TestFrequencyMCQs_Invariants(t *testing.T) {
	g := seeded()
	for _, text := range corpus {
		items := g.FrequencyMCQs(analysis.NewDocument(text), 5)
		assert.NotEmpty(t, items, "text %q", text)
		assertWellFormed(t, items)
	}
}

func TestFrequencyMCQs_PlaceholderConcepts(t *testing.T) {
	items := New(nil).FrequencyMCQs(analysis.NewDocument(""), 5)
	require.Len(t, items, len(placeholderConcepts))
	for i, item := range items {
		assert.Equal(t, placeholderConcepts[i], item.Concept)
		assert.Equal(t, placeholderConcepts[i]+" refers to a central concept that explains an important idea or role in this topic.", item.Answer)
	}
}

func TestExamMCQs_FactItemsFirst(t *testing.T) {
	items := seeded().ExamMCQs(analysis.NewDocument(biologyNotes), 5)
	require.Len(t, items, 5)

	assert.Equal(t, "Which option best defines 'Osmosis'?", items[0].Question)
	assert.Equal(t, "the movement of water across a membrane", items[0].Answer)
	assert.Equal(t, "Osmosis", items[0].Concept)

	var causeItem *MCQItem
	for i := range items {
		if strings.HasPrefix(items[i].Question, "According to the passage, 'It causes cells to swell'") {
			causeItem = &items[i]
		}
	}
	require.NotNil(t, causeItem)
	assert.Equal(t, "water enters the cell", causeItem.Answer)
}

func TestExamMCQs_EnumerationUsesListedItems(t *testing.T) {
	doc := analysis.NewDocument("Primary colours: red, blue and yellow.")
	items := seeded().ExamMCQs(doc, 1)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "red", item.Answer)
	assert.ElementsMatch(t, []string{"red", "blue", "yellow.", unlistedItem}, item.Options)
}

func TestExamMCQs_TruncatesLongDefinitions(t *testing.T) {
	long := "Entropy is " + strings.Repeat("a very long explanation ", 10) + "end."
	items := seeded().ExamMCQs(analysis.NewDocument(long), 1)
	require.Len(t, items, 1)
	assert.Equal(t, definitionAnswerLen, len([]rune(items[0].Answer)))
	assert.True(t, strings.HasSuffix(items[0].Answer, "..."))
}

func TestBuildItem_PadsCollisions(t *testing.T) {
	item := seeded().buildItem("Q?", "c", "same", []string{"same", "same", " same "})
	assertWellFormed(t, []MCQItem{item})
	assert.Equal(t, "same", item.Answer)
}

func TestMCQItem_Helpers(t *testing.T) {
	item := MCQItem{Options: []string{"a", "b", "c", "d"}, Answer: "c"}
	assert.Equal(t, 2, item.AnswerIndex())
	assert.True(t, item.Offers("d"))
	assert.False(t, item.Offers("e"))
}

func TestQuestions_ShortContent(t *testing.T) {
	for _, text := range []string{"", "too short"} {
		set := Questions(analysis.NewDocument(text), 6)
		assert.Equal(t, []string{ShortContentPrompt}, set.Questions)
	}
}

func TestQuestions_BoundedAndDistinct(t *testing.T) {
	for _, text := range corpus {
		doc := analysis.NewDocument(text)
		if len(doc.Text) < MinQuestionText {
			continue
		}
		for _, count := range []int{1, 3, 6, 20} {
			set := Questions(doc, count)
			assert.GreaterOrEqual(t, len(set.Questions), 1)
			assert.LessOrEqual(t, len(set.Questions), count)

			seen := map[string]bool{}
			for _, q := range set.Questions {
				assert.False(t, seen[q], "duplicate question %q", q)
				seen[q] = true
			}
		}
	}
}

func TestQuestions_PriorityOrder(t *testing.T) {
	set := Questions(analysis.NewDocument(biologyNotes), 6)
	require.Len(t, set.Questions, 6)
	assert.Equal(t, "Define 'Osmosis' in simple terms and give one key point.", set.Questions[0])
	assert.Equal(t, "How does 'It causes cells to swell' lead to 'water enters the cell'? Explain the reasoning.", set.Questions[1])
	assert.True(t, strings.HasPrefix(set.Questions[2], "Contrast 'Diffusion spreads particles evenly'"))
	assert.NotEmpty(t, set.Keywords)
}

func TestQuestions_ProcessPrompt(t *testing.T) {
	set := Questions(analysis.NewDocument("Steps:\n1. Mix flour\n2. Add water\n3. Knead the dough"), 10)
	assert.Contains(t, set.Questions, "Outline the main steps of the process and the goal of each step.")
}

func TestMainIdeas(t *testing.T) {
	doc := analysis.NewDocument("Short. This second sentence is clearly much longer than the others. Tiny.")
	ideas := MainIdeas(doc, 2)
	require.Len(t, ideas, 2)
	assert.Equal(t, "This second sentence is clearly much longer than the others.", ideas[0])
	assert.Equal(t, "Short.", ideas[1])

	assert.Empty(t, MainIdeas(analysis.NewDocument(""), 3))
}

func TestTemplates(t *testing.T) {
	assert.Equal(t, genericTemplates, Templates(analysis.DomainGeneric))

	coding := Templates(analysis.DomainCoding)
	require.Len(t, coding, len(codingTemplates)+len(genericTemplates))
	assert.Equal(t, codingTemplates[0], coding[0])

	q, ok := Fill(genericTemplates[0], "Entropy")
	assert.True(t, ok)
	assert.Equal(t, "Summarize the role of 'Entropy' in the context of this passage.", q)

	_, ok = Fill(genericTemplates[0], "  ")
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(analysis.NewDocument("")))

	s := Summarize(analysis.NewDocument(biologyNotes))
	assert.Contains(t, s.Summary, "**")
	assert.Contains(t, s.Insight, "Focus on how")
	for _, line := range strings.Split(s.Summary, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), summaryWidth)
	}
}

func TestSummarize_PlaceholderTerms(t *testing.T) {
	s := Summarize(analysis.NewDocument("a b c"))
	assert.Contains(t, s.Summary, "**concept**")
	assert.Equal(t, "Focus on how concept relates to principle, application; it often forms the key link for exam answers.", s.Insight)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "aa bb\ncc", Wrap("aa bb cc", 5))
	assert.Equal(t, "", Wrap("   ", 10))
	assert.Equal(t, "short\nextrao\nrdinar\nily x", Wrap("short extraordinarily x", 6))
	assert.Equal(t, "ab cde\nfghij", Wrap("ab cdefghij", 6))
	assert.Equal(t, "abc\ndef", Wrap("abcdef", 3))

	// width counts runes, not bytes
	assert.Equal(t, "ééé ééé", Wrap("ééé ééé", 7))
	assert.Equal(t, "naïve\ncafé", Wrap("naïve café", 6))
}

func TestClip(t *testing.T) {
	exact := strings.Repeat("a", fallbackAnswerLen)
	assert.Equal(t, exact, clip(exact, fallbackAnswerLen))

	over := strings.Repeat("b", fallbackAnswerLen+1)
	assert.Equal(t, strings.Repeat("b", fallbackAnswerLen)+"...", clip(over, fallbackAnswerLen))
}

func TestExamMCQs_FallbackAnswerClipped(t *testing.T) {
	// one 81-character sentence with no fact patterns falls through to the keyword/main-idea items
	sentence := "Mitochondria generate adenosine triphosphate inside eukaryotic organisms all day."
	require.Len(t, sentence, fallbackAnswerLen+1)

	items := seeded().ExamMCQs(analysis.NewDocument(sentence), 1)
	require.Len(t, items, 1)
	assert.True(t, strings.HasSuffix(items[0].Answer, sentence[:fallbackAnswerLen]+"..."), items[0].Answer)
}
