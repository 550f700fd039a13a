package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"studyaid-backend/internal/session"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists whole session snapshots for the lifetime of a session.
// Get returns a copy; changes are only visible after Save.
type SessionStore interface {
	Save(ctx context.Context, s *session.State) error
	Get(ctx context.Context, id uuid.UUID) (*session.State, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
