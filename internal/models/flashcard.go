package models

type Flashcard struct {
	Index      int    `json:"index"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Note       string `json:"note"`
	Reviewed   bool   `json:"reviewed"`
}

type FlashcardsResponse struct {
	Cards    []Flashcard `json:"cards"`
	Reviewed int         `json:"reviewed"`
}

// UpdateFlashcardRequest edits one card. Blank term or definition keep the
// current value; note always replaces it.
type UpdateFlashcardRequest struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Note       string `json:"note"`
}
