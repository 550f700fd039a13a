package models

// QuizQuestion is one item as shown to the learner. The answer stays hidden
// until the quiz is submitted.
type QuizQuestion struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Selected *string  `json:"selected"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
	Answered  int            `json:"answered"`
	Submitted bool           `json:"submitted"`
	Result    *QuizResult    `json:"result,omitempty"`
}

type SelectAnswerRequest struct {
	Option string `json:"option"`
}

type QuizReviewItem struct {
	Index    int    `json:"index"`
	Question string `json:"question"`
	Chosen   string `json:"chosen"`
	Answer   string `json:"answer"`
	Correct  bool   `json:"correct"`
}

type QuizResult struct {
	Score  int              `json:"score"`
	Total  int              `json:"total"`
	Review []QuizReviewItem `json:"review"`
}
