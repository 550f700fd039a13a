package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"studyaid-backend/internal/analysis"
	"studyaid-backend/internal/middleware"
	"studyaid-backend/internal/models"
	"studyaid-backend/internal/services"
	"studyaid-backend/internal/session"
)

type ContentHandler struct {
	study          *services.StudyService
	extract        *services.FileExtractService
	maxUploadBytes int64
	log            *zap.Logger
}

func NewContentHandler(study *services.StudyService, extract *services.FileExtractService, maxUploadBytes int64, log *zap.Logger) *ContentHandler {
	return &ContentHandler{study: study, extract: extract, maxUploadBytes: maxUploadBytes, log: log}
}

// SetText replaces the session's notes with pasted text.
func (h *ContentHandler) SetText(w http.ResponseWriter, r *http.Request) {
	var req models.SetContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	h.apply(w, r, req.Text, session.SourceText)
}

// Upload extracts text from a .txt, .md, .pdf or .docx file and applies it as
// the session's notes.
func (h *ContentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("FILE_TOO_LARGE", h.tooLargeMessage(), r))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("FILE_TOO_LARGE", h.tooLargeMessage(), r))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No file provided", r))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Failed to read file", r))
		return
	}

	text, err := h.extract.ExtractText(header.Filename, data)
	if err != nil {
		h.log.Info("upload rejected",
			zap.String("filename", header.Filename), zap.Int("bytes", len(data)), zap.Error(err))
		handleServiceError(w, r, err)
		return
	}
	h.apply(w, r, text, session.SourceUpload)
}

// SupportedFormats lists the accepted upload extensions.
func (h *ContentHandler) SupportedFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SupportedFormatsResponse{
		Extensions:  services.SupportedExtensions,
		MaxUploadMB: int(h.maxUploadBytes >> 20),
	})
}

// Get returns the normalized content of the session.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.study.Session(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contentResponse(st, false))
}

func (h *ContentHandler) apply(w http.ResponseWriter, r *http.Request, raw, source string) {
	st, reset, err := h.study.SetContent(r.Context(), middleware.GetSessionID(r.Context()), raw, source)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contentResponse(st, reset))
}

func (h *ContentHandler) tooLargeMessage() string {
	return fmt.Sprintf("File size exceeds %dMB limit", h.maxUploadBytes>>20)
}

func contentResponse(st *session.State, reset bool) models.ContentResponse {
	doc := st.Document()
	return models.ContentResponse{
		SessionID:  st.ID,
		Source:     st.Source,
		Content:    st.Content,
		Domain:     string(analysis.Classify(doc.Text)),
		Sentences:  len(doc.Sentences),
		Characters: len(st.Content),
		Reset:      reset,
	}
}
