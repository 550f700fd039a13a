package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"studyaid-backend/internal/models"
	"studyaid-backend/internal/repository"
	"studyaid-backend/internal/services"
	"studyaid-backend/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	resp := errorResp(code, message, r)
	resp.Error.Fields = fields
	return resp
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Session not found or expired", r))
	case errors.Is(err, session.ErrQuestionIndex):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Question not found", r))
	case errors.Is(err, session.ErrCardIndex):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Flashcard not found", r))
	case errors.Is(err, session.ErrOptionNotOffered):
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Option is not offered for this question",
			map[string]string{"option": "must be one of the question's options"}, r))
	case errors.Is(err, session.ErrNoContent):
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Load some notes first", r))
	case errors.Is(err, services.ErrUnsupportedFormat):
		writeJSON(w, http.StatusUnsupportedMediaType, errorResp("UNSUPPORTED_FORMAT", "File type not supported", r))
	case errors.Is(err, services.ErrNoText):
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("VALIDATION_ERROR", "No extractable text found in file", r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}

// indexParam reads the {index} URL parameter. It writes the error response
// itself and reports false when the value is not a non-negative integer.
func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "index must be a non-negative integer", r))
		return 0, false
	}
	return index, true
}
