package analysis

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Keyword is a candidate domain term and its ranking score.
type Keyword struct {
	Term  string  `json:"term" yaml:"term"`
	Score float64 `json:"score" yaml:"score"`
}

var (
	candidateToken = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9\-/]{4,}\b`)
	frequencyToken = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9\-/+]{3,}\b`)
)

// commonWords is the small stopword set shared by both extractors.
var commonWords = wordSet(
	"about", "which", "their", "there", "these", "those", "other", "using", "between",
	"through", "under", "within", "where", "while", "that", "this", "study", "learning",
	"and", "the", "for", "with", "is", "are", "was", "be", "to", "of", "in", "on", "a",
	"an", "by",
)

// genericWords are too broad to make useful focus terms.
var genericWords = wordSet(
	"understanding", "application", "applications", "programming", "example", "examples",
	"concept", "important", "system", "data", "process", "model", "design", "method",
	"methods", "results", "result", "approach", "approaches", "analysis", "study", "paper",
	"introduction", "conclusion", "overview", "entertainment", "movie", "music", "games",
	"sport", "sports", "news", "people", "person", "thing", "things", "time", "day", "week",
	"month", "year", "life", "world", "social", "general", "basic", "simple", "note", "notes",
)

var technicalSuffixes = []string{
	"ology", "ologies", "itis", "ase", "osis", "graphy", "metry", "dynamics", "statics",
	"lysis", "genic", "phobic", "philia", "ectomy", "emia", "algia", "pathy", "morphism",
	"morphic", "synthesis", "kinetics", "quantum", "neural",
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, w string) bool {
	_, ok := set[w]
	return ok
}

// ScoreKeyword weighs length by in-text frequency and adds an acronym bonus.
func ScoreKeyword(word, text string) float64 {
	freq := strings.Count(strings.ToLower(text), strings.ToLower(word))
	score := float64(len(word)) * (1 + 0.3*float64(freq))
	if strings.IndexFunc(word, unicode.IsUpper) >= 0 {
		score += 2
	}
	return score
}

// CandidateKeywords returns at most n ranked domain terms, preferring tokens that look technical.
func CandidateKeywords(text string, n int) []Keyword {
	if n <= 0 || text == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var ranked []Keyword
	for _, tok := range candidateToken.FindAllString(text, -1) {
		key := strings.ToLower(tok)
		if inSet(commonWords, key) || inSet(genericWords, key) || len(tok) < 5 {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ranked = append(ranked, Keyword{Term: tok, Score: ScoreKeyword(tok, text)})
	}

	// Stable sort keeps first-appearance order between equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var picked []Keyword
	for _, kw := range ranked {
		if looksTechnical(kw.Term) {
			picked = append(picked, kw)
		}
		if len(picked) >= n {
			break
		}
	}
	if len(picked) == 0 {
		picked = ranked
	}
	if len(picked) > n {
		picked = picked[:n]
	}
	return picked
}

// CandidateTerms is CandidateKeywords without the scores.
func CandidateTerms(text string, n int) []string {
	kws := CandidateKeywords(text, n)
	terms := make([]string, len(kws))
	for i, kw := range kws {
		terms[i] = kw.Term
	}
	return terms
}

func looksTechnical(word string) bool {
	if len(word) >= 7 || strings.ContainsAny(word, "-/") {
		return true
	}
	if strings.ToUpper(word) == word && strings.IndexFunc(word, unicode.IsLetter) >= 0 {
		return true
	}
	lower := strings.ToLower(word)
	for _, suffix := range technicalSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// FrequencyKeywords ranks capitalised tokens first, then the most frequent
// remaining words, deduplicated case-insensitively and capped at n.
func FrequencyKeywords(text string, n int) []string {
	if n <= 0 || text == "" {
		return nil
	}

	words := frequencyToken.FindAllString(text, -1)

	type counted struct {
		word  string
		count int
	}
	var order []*counted
	counts := make(map[string]*counted)

	var capitalized []string
	seenCap := make(map[string]struct{})

	for _, w := range words {
		lower := strings.ToLower(w)
		if inSet(commonWords, lower) {
			continue
		}
		c, ok := counts[lower]
		if !ok {
			c = &counted{word: lower}
			counts[lower] = c
			order = append(order, c)
		}
		c.count++

		if unicode.IsUpper(rune(w[0])) {
			if _, dup := seenCap[w]; !dup {
				seenCap[w] = struct{}{}
				capitalized = append(capitalized, w)
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})
	if len(order) > n*2 {
		order = order[:n*2]
	}

	result := make([]string, 0, len(capitalized)+len(order))
	result = append(result, capitalized...)
	for _, c := range order {
		result = append(result, c.word)
	}

	seen := make(map[string]struct{})
	var filtered []string
	for _, w := range result {
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		filtered = append(filtered, w)
		if len(filtered) >= n {
			break
		}
	}
	return filtered
}
