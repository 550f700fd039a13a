package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"studyaid-backend/internal/middleware"
	"studyaid-backend/internal/models"
	"studyaid-backend/internal/services"
)

type SessionHandler struct {
	study *services.StudyService
	auth  *middleware.SessionAuth
	log   *zap.Logger
}

func NewSessionHandler(study *services.StudyService, auth *middleware.SessionAuth, log *zap.Logger) *SessionHandler {
	return &SessionHandler{study: study, auth: auth, log: log}
}

// Create starts a new study session and returns its bearer token.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	st, err := h.study.CreateSession(r.Context())
	if err != nil {
		h.log.Error("failed to create session", zap.Error(err))
		handleServiceError(w, r, err)
		return
	}

	token, err := h.auth.GenerateToken(st.ID)
	if err != nil {
		h.log.Error("failed to sign session token", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create session", r))
		return
	}

	writeJSON(w, http.StatusCreated, models.CreateSessionResponse{SessionID: st.ID, Token: token})
}

// End discards the caller's session.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.study.EndSession(r.Context(), middleware.GetSessionID(r.Context())); err != nil {
		handleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
