package handlers

import (
	"encoding/json"
	"net/http"

	"studyaid-backend/internal/middleware"
	"studyaid-backend/internal/models"
	"studyaid-backend/internal/services"
	"studyaid-backend/internal/session"
)

type QuizHandler struct {
	study *services.StudyService
}

func NewQuizHandler(study *services.StudyService) *QuizHandler {
	return &QuizHandler{study: study}
}

// Get returns the cached quiz. Answers are only included after submission.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.study.Quiz(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizResponse(st))
}

func (h *QuizHandler) Select(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}

	var req models.SelectAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Option == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "option is required", r))
		return
	}

	st, err := h.study.SelectAnswer(r.Context(), middleware.GetSessionID(r.Context()), index, req.Option)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizResponse(st))
}

func (h *QuizHandler) Clear(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}

	st, err := h.study.ClearAnswer(r.Context(), middleware.GetSessionID(r.Context()), index)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizResponse(st))
}

func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	res, err := h.study.SubmitQuiz(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizResult(res))
}

func (h *QuizHandler) Reset(w http.ResponseWriter, r *http.Request) {
	st, err := h.study.ResetQuiz(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizResponse(st))
}

func quizResponse(st *session.State) models.QuizResponse {
	resp := models.QuizResponse{
		Questions: make([]models.QuizQuestion, 0, len(st.MCQs)),
		Submitted: st.Submitted,
	}
	for i, item := range st.MCQs {
		q := models.QuizQuestion{Index: i, Question: item.Question, Options: item.Options}
		if chosen, ok := st.Selections[i]; ok {
			q.Selected = &chosen
			resp.Answered++
		}
		resp.Questions = append(resp.Questions, q)
	}
	if st.Submitted {
		res := quizResult(st.Grade())
		resp.Result = &res
	}
	return resp
}

func quizResult(res session.Result) models.QuizResult {
	out := models.QuizResult{
		Score:  res.Score,
		Total:  res.Total,
		Review: make([]models.QuizReviewItem, 0, len(res.Review)),
	}
	for _, item := range res.Review {
		out.Review = append(out.Review, models.QuizReviewItem(item))
	}
	return out
}
