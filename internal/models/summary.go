package models

type SummaryResponse struct {
	Summary  string   `json:"summary"`
	Insight  string   `json:"insight"`
	Keywords []string `json:"keywords"`
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
	Keywords  []string `json:"keywords"`
}
