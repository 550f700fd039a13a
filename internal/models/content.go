package models

import "github.com/google/uuid"

type CreateSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
}

type SetContentRequest struct {
	Text string `json:"text"`
}

type ContentResponse struct {
	SessionID  uuid.UUID `json:"session_id"`
	Source     string    `json:"source"`
	Content    string    `json:"content"`
	Domain     string    `json:"domain"`
	Sentences  int       `json:"sentences"`
	Reset      bool      `json:"reset"`
	Characters int       `json:"characters"`
}

type SupportedFormatsResponse struct {
	Extensions  []string `json:"extensions"`
	MaxUploadMB int      `json:"max_upload_mb"`
}
