package session

import (
	"errors"
	"fmt"
	"strings"
)

var ErrCardIndex = errors.New("flashcard index out of range")

const placeholderDefinition = "Add your own definition."

// Flashcard is a user-authored card. Only the seed text is generated.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Note       string `json:"note"`
	Reviewed   bool   `json:"reviewed"`
}

// FlashcardStore is an index-addressed list of cards; deleting a card shifts
// later cards down by one.
type FlashcardStore struct {
	Cards []Flashcard `json:"cards"`
}

func placeholderCard(position int) Flashcard {
	return Flashcard{
		Term:       fmt.Sprintf("Topic %d", position),
		Definition: placeholderDefinition,
	}
}

// SeedFlashcards returns n placeholder cards numbered from 1.
func SeedFlashcards(n int) []Flashcard {
	cards := make([]Flashcard, 0, max(n, 0))
	for i := 0; i < n; i++ {
		cards = append(cards, placeholderCard(i+1))
	}
	return cards
}

// Reset replaces every card with n fresh placeholders.
func (s *FlashcardStore) Reset(n int) {
	s.Cards = SeedFlashcards(n)
}

// Add appends one placeholder card and returns it.
func (s *FlashcardStore) Add() Flashcard {
	card := placeholderCard(len(s.Cards) + 1)
	s.Cards = append(s.Cards, card)
	return card
}

// Update edits the card at index. Blank term or definition keep their previous
// value; note is always replaced, including with an empty string.
func (s *FlashcardStore) Update(index int, term, definition, note string) (Flashcard, error) {
	if err := s.check(index); err != nil {
		return Flashcard{}, err
	}
	card := &s.Cards[index]
	if t := strings.TrimSpace(term); t != "" {
		card.Term = t
	}
	if d := strings.TrimSpace(definition); d != "" {
		card.Definition = d
	}
	card.Note = strings.TrimSpace(note)
	return *card, nil
}

// Delete removes the card at index.
func (s *FlashcardStore) Delete(index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.Cards = append(s.Cards[:index], s.Cards[index+1:]...)
	return nil
}

// MarkReviewed flags the card at index as reviewed in this session.
func (s *FlashcardStore) MarkReviewed(index int) (Flashcard, error) {
	if err := s.check(index); err != nil {
		return Flashcard{}, err
	}
	s.Cards[index].Reviewed = true
	return s.Cards[index], nil
}

// List returns a copy of the cards in display order.
func (s *FlashcardStore) List() []Flashcard {
	out := make([]Flashcard, len(s.Cards))
	copy(out, s.Cards)
	return out
}

func (s *FlashcardStore) Len() int {
	return len(s.Cards)
}

func (s *FlashcardStore) check(index int) error {
	if index < 0 || index >= len(s.Cards) {
		return fmt.Errorf("%w: %d (have %d)", ErrCardIndex, index, len(s.Cards))
	}
	return nil
}
