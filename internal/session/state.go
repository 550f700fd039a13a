// Package session holds the per-session study state: the current content, the
// cached quiz with the learner's selections, and the flashcard deck.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"studyaid-backend/internal/analysis"
	"studyaid-backend/internal/generator"
)

var (
	ErrQuestionIndex    = errors.New("question index out of range")
	ErrOptionNotOffered = errors.New("option is not offered for this question")
	ErrNoContent        = errors.New("session has no content")
)

// Source values record where the current content came from.
const (
	SourceText   = "text"
	SourceUpload = "upload"
)

// QuizBuilder generates a fresh quiz for a document.
type QuizBuilder func(doc analysis.Document) []generator.MCQItem

// State is one learner's session. It is owned by exactly one session and is
// never shared; callers persist whole snapshots through a store.
type State struct {
	ID         uuid.UUID           `json:"id"`
	Source     string              `json:"source"`
	Raw        string              `json:"raw"`
	Content    string              `json:"content"`
	MCQs       []generator.MCQItem `json:"mcqs"`
	Selections map[int]string      `json:"selections"`
	Submitted  bool                `json:"submitted"`
	Flashcards FlashcardStore      `json:"flashcards"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// New returns an empty session.
func New(id uuid.UUID) *State {
	now := time.Now().UTC()
	return &State{
		ID:         id,
		Selections: make(map[int]string),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Document rebuilds the analysed form of the current content.
func (s *State) Document() analysis.Document {
	return analysis.NewDocument(s.Raw)
}

// HasContent reports whether any normalized content is loaded.
func (s *State) HasContent() bool {
	return s.Content != ""
}

// ApplyContent loads raw input. When the normalized text differs from the
// current content the quiz is regenerated, selections and the submitted flag
// are cleared and the flashcards are reseeded with seed placeholders. Input
// that normalizes to the current content only replaces the raw text, so line
// layout stays current for Document. It reports whether a reset happened.
func (s *State) ApplyContent(raw, source string, seed int, build QuizBuilder) bool {
	doc := analysis.NewDocument(raw)
	if doc.Text == s.Content {
		s.Raw = raw
		s.Source = source
		s.touch()
		return false
	}

	s.Raw = raw
	s.Source = source
	s.Content = doc.Text
	s.Selections = make(map[int]string)
	s.Submitted = false
	s.MCQs = nil
	s.Flashcards.Cards = nil
	if !doc.Empty() {
		s.MCQs = build(doc)
		s.Flashcards.Reset(seed)
	}
	s.touch()
	return true
}

// EnsureQuiz builds the quiz if content is loaded but no quiz is cached yet.
func (s *State) EnsureQuiz(build QuizBuilder) {
	if len(s.MCQs) == 0 && s.HasContent() {
		s.MCQs = build(s.Document())
		s.touch()
	}
}

// Select records option as the answer to question index.
func (s *State) Select(index int, option string) error {
	item, err := s.question(index)
	if err != nil {
		return err
	}
	if !item.Offers(option) {
		return fmt.Errorf("%w: question %d", ErrOptionNotOffered, index)
	}
	if s.Selections == nil {
		s.Selections = make(map[int]string)
	}
	s.Selections[index] = option
	s.touch()
	return nil
}

// ClearSelection marks question index as unanswered.
func (s *State) ClearSelection(index int) error {
	if _, err := s.question(index); err != nil {
		return err
	}
	delete(s.Selections, index)
	s.touch()
	return nil
}

// ReviewItem is the graded outcome of one question.
type ReviewItem struct {
	Index    int    `json:"index"`
	Question string `json:"question"`
	Chosen   string `json:"chosen"`
	Answer   string `json:"answer"`
	Correct  bool   `json:"correct"`
}

// Result is the graded quiz.
type Result struct {
	Score  int          `json:"score"`
	Total  int          `json:"total"`
	Review []ReviewItem `json:"review"`
}

// Grade compares selections with the answer key. Unanswered questions count
// as incorrect.
func (s *State) Grade() Result {
	res := Result{Total: len(s.MCQs), Review: make([]ReviewItem, 0, len(s.MCQs))}
	for i, item := range s.MCQs {
		chosen := s.Selections[i]
		correct := chosen != "" && chosen == item.Answer
		if correct {
			res.Score++
		}
		res.Review = append(res.Review, ReviewItem{
			Index:    i,
			Question: item.Question,
			Chosen:   chosen,
			Answer:   item.Answer,
			Correct:  correct,
		})
	}
	return res
}

// Submit sets the submitted flag and grades the quiz.
func (s *State) Submit() (Result, error) {
	if !s.HasContent() {
		return Result{}, ErrNoContent
	}
	s.Submitted = true
	s.touch()
	return s.Grade(), nil
}

// ResetQuiz clears selections and the submitted flag but keeps the cached
// questions and their option order.
func (s *State) ResetQuiz() {
	s.Selections = make(map[int]string)
	s.Submitted = false
	s.touch()
}

// Clone returns a deep copy so stored snapshots never alias live state.
func (s *State) Clone() *State {
	c := *s
	c.MCQs = make([]generator.MCQItem, len(s.MCQs))
	for i, item := range s.MCQs {
		item.Options = append([]string(nil), item.Options...)
		c.MCQs[i] = item
	}
	c.Selections = make(map[int]string, len(s.Selections))
	for k, v := range s.Selections {
		c.Selections[k] = v
	}
	c.Flashcards = FlashcardStore{Cards: s.Flashcards.List()}
	return &c
}

func (s *State) question(index int) (generator.MCQItem, error) {
	if index < 0 || index >= len(s.MCQs) {
		return generator.MCQItem{}, fmt.Errorf("%w: %d (have %d)", ErrQuestionIndex, index, len(s.MCQs))
	}
	return s.MCQs[index], nil
}

func (s *State) touch() {
	s.UpdatedAt = time.Now().UTC()
}
