package analysis

import "strings"

type Domain string

const (
	DomainCoding  Domain = "coding"
	DomainMedical Domain = "medical"
	DomainScience Domain = "science"
	DomainGeneric Domain = "generic"
)

var (
	codingHints = []string{
		"function", "variable", "class", "algorithm", "array", "loop", "compile", "python",
		"java", "c++", "javascript", "pointer", "memory", "recursion", "api", "server",
		"client", "database",
	}
	medicalHints = []string{
		"diagnosis", "symptom", "disease", "therapy", "virus", "bacteria", "pharmacology",
		"cardiac", "neural", "oncology", "pathology", "surgery", "vaccine", "antibiotic",
		"tumor", "metastasis", "pcr", "imaging",
	}
	scienceHints = []string{
		"quantum", "electron", "molecule", "thermodynamics", "entropy", "gravity", "cell",
		"photosynthesis", "enzyme", "reaction", "synthesis",
	}
)

// minDomainHits is how many distinct hints a domain needs before it is chosen.
const minDomainHits = 2

// Classify picks a subject domain by substring hints. Coding wins over medical,
// medical over science, regardless of hit counts.
func Classify(text string) Domain {
	lower := strings.ToLower(text)
	switch {
	case countHints(lower, codingHints) >= minDomainHits:
		return DomainCoding
	case countHints(lower, medicalHints) >= minDomainHits:
		return DomainMedical
	case countHints(lower, scienceHints) >= minDomainHits:
		return DomainScience
	default:
		return DomainGeneric
	}
}

func countHints(lower string, hints []string) int {
	n := 0
	for _, h := range hints {
		if strings.Contains(lower, h) {
			n++
		}
	}
	return n
}
