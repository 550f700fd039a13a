package handlers

import (
	"net/http"

	"studyaid-backend/internal/middleware"
	"studyaid-backend/internal/models"
	"studyaid-backend/internal/services"
)

type StudyHandler struct {
	study *services.StudyService
}

func NewStudyHandler(study *services.StudyService) *StudyHandler {
	return &StudyHandler{study: study}
}

func (h *StudyHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, keywords, err := h.study.Summary(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	if keywords == nil {
		keywords = []string{}
	}
	writeJSON(w, http.StatusOK, models.SummaryResponse{
		Summary:  summary.Summary,
		Insight:  summary.Insight,
		Keywords: keywords,
	})
}

func (h *StudyHandler) Questions(w http.ResponseWriter, r *http.Request) {
	set, err := h.study.Questions(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	if set.Keywords == nil {
		set.Keywords = []string{}
	}
	writeJSON(w, http.StatusOK, models.QuestionsResponse{Questions: set.Questions, Keywords: set.Keywords})
}
