package models

import "github.com/google/uuid"

// WebSocket message types
const (
	EventContentUpdated    = "content_updated"
	EventQuizUpdated       = "quiz_updated"
	EventQuizSubmitted     = "quiz_submitted"
	EventFlashcardsChanged = "flashcards_changed"
)

type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type ContentUpdatedEvent struct {
	SessionID uuid.UUID `json:"session_id"`
	Source    string    `json:"source"`
	Reset     bool      `json:"reset"`
	Questions int       `json:"questions"`
}

type QuizSubmittedEvent struct {
	SessionID uuid.UUID `json:"session_id"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
}

type QuizUpdatedEvent struct {
	SessionID uuid.UUID `json:"session_id"`
	Questions int       `json:"questions"`
	Submitted bool      `json:"submitted"`
}

type FlashcardsChangedEvent struct {
	SessionID uuid.UUID `json:"session_id"`
	Count     int       `json:"count"`
}
