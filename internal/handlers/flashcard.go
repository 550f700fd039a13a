package handlers

import (
	"encoding/json"
	"net/http"

	"studyaid-backend/internal/middleware"
	"studyaid-backend/internal/models"
	"studyaid-backend/internal/services"
	"studyaid-backend/internal/session"
)

type FlashcardHandler struct {
	study *services.StudyService
}

func NewFlashcardHandler(study *services.StudyService) *FlashcardHandler {
	return &FlashcardHandler{study: study}
}

func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.study.Flashcards(r.Context(), middleware.GetSessionID(r.Context()))
	respondCards(w, r, http.StatusOK, cards, err)
}

func (h *FlashcardHandler) Add(w http.ResponseWriter, r *http.Request) {
	cards, err := h.study.AddFlashcard(r.Context(), middleware.GetSessionID(r.Context()))
	respondCards(w, r, http.StatusCreated, cards, err)
}

func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}

	var req models.UpdateFlashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	cards, err := h.study.UpdateFlashcard(r.Context(), middleware.GetSessionID(r.Context()), index, req.Term, req.Definition, req.Note)
	respondCards(w, r, http.StatusOK, cards, err)
}

func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	cards, err := h.study.DeleteFlashcard(r.Context(), middleware.GetSessionID(r.Context()), index)
	respondCards(w, r, http.StatusOK, cards, err)
}

func (h *FlashcardHandler) MarkReviewed(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	cards, err := h.study.MarkReviewed(r.Context(), middleware.GetSessionID(r.Context()), index)
	respondCards(w, r, http.StatusOK, cards, err)
}

func (h *FlashcardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	cards, err := h.study.ResetFlashcards(r.Context(), middleware.GetSessionID(r.Context()))
	respondCards(w, r, http.StatusOK, cards, err)
}

func respondCards(w http.ResponseWriter, r *http.Request, status int, cards []session.Flashcard, err error) {
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp := models.FlashcardsResponse{Cards: make([]models.Flashcard, 0, len(cards))}
	for i, c := range cards {
		if c.Reviewed {
			resp.Reviewed++
		}
		resp.Cards = append(resp.Cards, models.Flashcard{
			Index:      i,
			Term:       c.Term,
			Definition: c.Definition,
			Note:       c.Note,
			Reviewed:   c.Reviewed,
		})
	}
	writeJSON(w, status, resp)
}
