package generator

import (
	"strings"

	"studyaid-backend/internal/analysis"
)

const slot = "{k}"

var genericTemplates = []string{
	"Summarize the role of '{k}' in the context of this passage.",
	"Why is '{k}' considered important in this topic?",
	"Provide a practical example that demonstrates '{k}'.",
	"What challenges are associated with '{k}' and how can they be mitigated?",
	"How does '{k}' relate to other major concepts mentioned here?",
	"Propose one recommendation to improve outcomes related to '{k}'.",
	"Explain how '{k}' has evolved historically and its current relevance.",
}

var codingTemplates = []string{
	"Explain how the concept '{k}' affects software design or performance.",
	"Write a short example (in words) showing '{k}' in code or algorithmic context.",
	"What trade-offs are involved when using '{k}' in system implementation?",
	"How would you debug or test issues related to '{k}'?",
	"Compare '{k}' with a related programming concept and state the key difference.",
	"Describe a real-world application where '{k}' improves system behavior.",
}

var medicalTemplates = []string{
	"Define '{k}' clinically and describe its diagnostic significance.",
	"Describe one treatment or management strategy related to '{k}'.",
	"What are common complications or concerns associated with '{k}'?",
	"How would you explain the importance of '{k}' to a patient in simple terms?",
	"Compare '{k}' with a related medical concept and outline differences.",
	"Suggest a basic diagnostic approach or test for '{k}'.",
}

var scienceTemplates = []string{
	"Explain the underlying principle of '{k}' and its significance in this field.",
	"Describe an experiment or observation that demonstrates '{k}'.",
	"What are the main factors that influence '{k}' in this context?",
	"How does '{k}' interact with other scientific concepts discussed here?",
	"Outline practical applications of '{k}' in technology or research.",
}

// Templates returns the open-question templates for a domain: the domain's own
// set first, followed by the generic set.
func Templates(domain analysis.Domain) []string {
	var specific []string
	switch domain {
	case analysis.DomainCoding:
		specific = codingTemplates
	case analysis.DomainMedical:
		specific = medicalTemplates
	case analysis.DomainScience:
		specific = scienceTemplates
	}
	out := make([]string, 0, len(specific)+len(genericTemplates))
	out = append(out, specific...)
	return append(out, genericTemplates...)
}

// Fill substitutes term into every slot of tmpl. It reports false when the
// term is blank, so an unfilled template never reaches the output.
func Fill(tmpl, term string) (string, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", false
	}
	return strings.ReplaceAll(tmpl, slot, term), true
}
